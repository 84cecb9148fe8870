package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/splita/splita-api/pkg/errors"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare NANP number gets +1", in: "5551234567", want: "+15551234567"},
		{name: "E.164 number passes through", in: "+442071838750", want: "+442071838750"},
		{name: "spaces are stripped", in: " +44 2071 838 750 ", want: "+442071838750"},
		{name: "too short", in: "123", wantErr: true},
		{name: "leading zero", in: "0123456789", wantErr: true},
		{name: "bare non-NANP length needs country code", in: "442071838750", wantErr: true},
		{name: "letters", in: "555-CALL-NOW", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
