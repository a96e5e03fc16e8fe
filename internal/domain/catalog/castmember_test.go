package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coralstream/catalog/internal/domain/catalog"
	"github.com/coralstream/catalog/internal/domain/validation"
)

func TestCastMemberType_IsValid(t *testing.T) {
	assert.True(t, catalog.CastMemberTypeActor.IsValid())
	assert.True(t, catalog.CastMemberTypeDirector.IsValid())
	assert.False(t, catalog.CastMemberType("PRODUCER").IsValid())
}

func TestCastMember_Update(t *testing.T) {
	member := catalog.NewCastMember("Ava DuVernay", catalog.CastMemberTypeActor)
	version := member.Version

	member.Update("Ava DuVernay", catalog.CastMemberTypeDirector)

	assert.Equal(t, catalog.CastMemberTypeDirector, member.Type())
	assert.Equal(t, version+1, member.Version)
}

func TestCastMember_Validate(t *testing.T) {
	tests := []struct {
		name   string
		member *catalog.CastMember
		want   int
	}{
		{"valid", catalog.NewCastMember("Ava", catalog.CastMemberTypeDirector), 0},
		{"empty name", catalog.NewCastMember("", catalog.CastMemberTypeActor), 1},
		{"invalid type", catalog.NewCastMember("Ava", "PRODUCER"), 1},
		{"both invalid", catalog.NewCastMember("", ""), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notification := validation.NewNotification()
			tt.member.Validate(notification)
			assert.Len(t, notification.Errors(), tt.want)
		})
	}
}
