package testutil

import (
	"errors"
	"strings"
	"testing"
)

// AssertErrorIs checks if an error matches the expected error
func AssertErrorIs(t *testing.T, err error, expected error) {
	t.Helper()

	if err == nil {
		t.Errorf("Expected an error of type %v, but got nil", expected)
		return
	}

	if !errors.Is(err, expected) {
		t.Errorf("Expected error of type %v, got %v", expected, err)
	}
}

// AssertContains checks that a string contains the expected substring
func AssertContains(t *testing.T, got, want string) {
	t.Helper()

	if !strings.Contains(got, want) {
		t.Errorf("Expected %q to contain %q", got, want)
	}
}

// AssertNotContains checks that a string does not contain the substring
func AssertNotContains(t *testing.T, got, avoid string) {
	t.Helper()

	if strings.Contains(got, avoid) {
		t.Errorf("Expected %q to not contain %q", got, avoid)
	}
}

// AssertEqual checks if two values are equal
func AssertEqual[T comparable](t *testing.T, actual, expected T, message string) {
	t.Helper()

	if actual != expected {
		t.Errorf("%s: expected %v, got %v", message, expected, actual)
	}
}

// AssertNoError asserts that no error was returned
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}
