package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"entrega/internal/domain"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name  string
		user  domain.User
		want  string
	}{
		{"both", domain.User{FirstName: "Ana", LastName: "Lopez"}, "Ana Lopez"},
		{"first only", domain.User{FirstName: "Ana"}, "Ana"},
		{"last only", domain.User{LastName: "Lopez"}, "Lopez"},
		{"empty", domain.User{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}

func TestDeliveryETA(t *testing.T) {
	min, max := 20, 35

	b := domain.Business{DeliveryTimeMinutesMin: &min, DeliveryTimeMinutesMax: &max}
	assert.Equal(t, "20-35 min", b.DeliveryETA())

	b = domain.Business{DeliveryTimeMinutesMin: &min}
	assert.Equal(t, "20 min", b.DeliveryETA())

	b = domain.Business{DeliveryTimeMinutesMax: &max}
	assert.Equal(t, "35 min", b.DeliveryETA())

	b = domain.Business{}
	assert.Equal(t, "", b.DeliveryETA())
}
