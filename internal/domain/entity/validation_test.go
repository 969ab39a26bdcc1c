package entity_test

import (
	"errors"
	"testing"

	"pressroom/internal/domain/entity"
)

func TestValidateRequiredText(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain text", value: "Test Article", wantErr: false},
		{name: "surrounding whitespace kept", value: "  padded  ", wantErr: false},
		{name: "single character", value: "x", wantErr: false},
		{name: "multibyte text", value: "記事", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "spaces only", value: "   ", wantErr: true},
		{name: "tabs and newlines", value: "\t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateRequiredText("title", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRequiredText(%q) err=%v, wantErr=%v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequiredText_ErrorDetails(t *testing.T) {
	err := entity.ValidateRequiredText("content", "")
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *entity.ValidationError", err)
	}
	if ve.Field != "content" {
		t.Errorf("Field = %q, want %q", ve.Field, "content")
	}
	if got := ve.Error(); got != "validation error on field 'content': cannot be empty" {
		t.Errorf("Error() = %q", got)
	}
}
