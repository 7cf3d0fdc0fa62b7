package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRoleName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"absent defaults to student", "", "student", nil},
		{"blank defaults to student", "   ", "student", nil},
		{"tab and newline default to student", "\t\n", "student", nil},
		{"plain role kept", "angel", "angel", nil},
		{"surrounding whitespace trimmed", "  instructor  ", "instructor", nil},
		{"admin rejected", "admin", "", ErrRoleNameAdmin},
		{"admin rejected after trim", "  admin  ", "", ErrRoleNameAdmin},
		{"capitalised Admin passes exact match", "Admin", "Admin", nil},
		{"upper ADMIN passes exact match", "  ADMIN  ", "ADMIN", nil},
		{"exactly 32 chars accepted", strings.Repeat("a", 32), strings.Repeat("a", 32), nil},
		{"33 chars rejected", strings.Repeat("a", 33), "", ErrRoleNameTooLong},
		{"33 chars after trim rejected", "  " + strings.Repeat("b", 33) + "  ", "", ErrRoleNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRoleName(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRoleNameAdminBeforeLength(t *testing.T) {
	// "admin" is only 5 chars, but order still matters for padded inputs:
	// trimming happens first, so a heavily padded "admin" hits the admin
	// rule, never the length rule.
	padded := strings.Repeat(" ", 40) + "admin" + strings.Repeat(" ", 40)
	_, err := NormalizeRoleName(padded)
	require.ErrorIs(t, err, ErrRoleNameAdmin)
}
