package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/potionshop/internal/domain"
)

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Rules)
		wantErr string
	}{
		{name: "defaults", modify: func(r *Rules) {}},
		{name: "exactly three", modify: func(r *Rules) { r.MinMergeSelection = 3 }},
		{name: "zero cap", modify: func(r *Rules) { r.MaxSelection = 0; r.MinMergeSelection = 0 }, wantErr: "MaxSelection must be at least 1"},
		{name: "minimum above cap", modify: func(r *Rules) { r.MinMergeSelection = 4 }, wantErr: "MinMergeSelection must not exceed MaxSelection"},
		{name: "negative default price", modify: func(r *Rules) { r.DefaultSellPrice = -1 }, wantErr: "DefaultSellPrice must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidRules)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
