package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidate_Payloads(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		obj        any
		wantFields map[string]string
	}{
		{name: "valid project", obj: models.ProjectCreate{Name: "Trip Planning"}},
		{name: "blank project name", obj: models.ProjectCreate{Name: "   "}, wantFields: map[string]string{"name": "notblank"}},
		{name: "missing task name", obj: &models.TaskCreate{}, wantFields: map[string]string{"name": "required"}},
		{
			name:       "priority out of range",
			obj:        models.TaskCreate{Name: "x", Priority: intPtr(11)},
			wantFields: map[string]string{"priority": "max=10"},
		},
		{
			name:       "bad task url",
			obj:        models.TaskCreate{Name: "x", URL: "not a url"},
			wantFields: map[string]string{"url": "url"},
		},
		{name: "update may clear url", obj: models.TaskUpdate{URL: strPtr("")}},
		{name: "update with bad url", obj: models.TaskUpdate{URL: strPtr("nope")}, wantFields: map[string]string{"url": "url"}},
		{name: "update with empty name", obj: models.TaskUpdate{Name: strPtr("")}, wantFields: map[string]string{"name": "notblank"}},
		{
			name:       "short credentials",
			obj:        models.Credentials{Login: "ab", Password: "123"},
			wantFields: map[string]string{"login": "min=3", "password": "min=6"},
		},
		{name: "bad email", obj: models.UserUpdate{Email: strPtr("nobody")}, wantFields: map[string]string{"email": "email"}},
		{name: "unknown language", obj: models.UserUpdate{Language: strPtr("xx")}, wantFields: map[string]string{"language": "oneof=en de ru"}},
		{name: "empty quick add", obj: models.QuickAddRequest{Text: " "}, wantFields: map[string]string{"text": "notblank"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewValidator().Validate(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{}
	err.Add("offset", "must be a non-negative integer")
	err.Add("limit", "must be a positive integer")

	assert.Equal(t, "invalid input: limit: must be a positive integer, offset: must be a non-negative integer", err.Error())
	assert.Equal(t, "empty text", (&ValidationError{Message: "empty text"}).Error())
}
