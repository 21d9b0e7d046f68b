package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-calendar/pkg/errors"
)

func TestHTTPErrorUnwrapsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", pkgErrors.NewNotFoundError("subtask not found"))

	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatal("errors.As failed")
	}
	if httpErr.StatusCode != http.StatusNotFound || httpErr.Message != "subtask not found" {
		t.Errorf("got %+v", httpErr)
	}
	if httpErr.Error() != "404: subtask not found" {
		t.Errorf("Error() = %q", httpErr.Error())
	}
}
