package ui

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/automoto/domemask/mask"
	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		wantState string
		wantMask  string
	}{
		{
			name:      "inactive",
			status:    Status{State: "Placed"},
			wantState: "inactive",
			wantMask:  "mask off",
		},
		{
			name: "placed",
			status: Status{
				Active:      true,
				State:       "Placed",
				MaskEnabled: true,
				Params:      mask.Params{Center: math32.Vec3(1, 0, -2), Radius: 2.5},
			},
			wantState: "Placed",
			wantMask:  "center (1.00, 0.00, -2.00)  radius 2.50",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, maskLine := statusLines(tt.status)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantMask, maskLine)
		})
	}
}
