package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/john-rice/td/common"
)

func TestMemory_RegisterRemoteDeduplicates(t *testing.T) {
	m := NewMemory()

	loc := RemoteLocation{FileType: FileTypeThumbnail, ID: 42, AccessHash: 99, SourceKey: "thumbnail/thumbnail"}
	a := m.RegisterRemote(loc, FromServer, 0, 100, 0, "a.jpg")
	b := m.RegisterRemote(loc, FromServer, 0, 100, 0, "a.jpg")
	assert.True(t, a.IsValid())
	assert.Equal(t, a, b)

	other := loc
	other.ID = 43
	c := m.RegisterRemote(other, FromServer, 0, 100, 0, "c.jpg")
	assert.NotEqual(t, a, c)

	web := m.RegisterRemote(RemoteLocation{FileType: FileTypeThumbnail, Url: "https://example.com/x.jpg"}, FromServer, 0, 100, 0, "x.jpg")
	assert.NotEqual(t, a, web)
}

func TestMemory_Content(t *testing.T) {
	m := NewMemory()
	ref := m.RegisterRemote(RemoteLocation{ID: 1, SourceKey: "test"}, FromServer, 0, 3, 0, "x.jpg")

	assert.Nil(t, m.Content(ref))
	m.SetContent(ref, []byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, m.Content(ref))
}

func TestMemory_ResolvePersistentId(t *testing.T) {
	m := NewMemory()

	_, err := m.ResolvePersistentId("", FileTypePhoto)
	assert.ErrorIs(t, err, common.ErrUnknownPersistentId)

	a, err := m.ResolvePersistentId("example.com/file.png", FileTypePhoto)
	assert.NoError(t, err)
	assert.True(t, a.IsValid())

	b, err := m.ResolvePersistentId("example.com/file.png", FileTypePhoto)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMemory_GetFileDescriptor(t *testing.T) {
	m := NewMemory()

	assert.Nil(t, m.GetFileDescriptor(FileRef{}))
	assert.Nil(t, m.GetFileDescriptor(NewFileRef(99)))

	ref := m.RegisterRemote(RemoteLocation{ID: 1, SourceKey: "test"}, FromServer, 0, 0, 64, "x.jpg")
	desc := m.GetFileDescriptor(ref)
	if assert.NotNil(t, desc) {
		assert.Equal(t, ref, desc.Ref)
		assert.Equal(t, int32(64), desc.DeclaredSize)
		assert.Equal(t, "x.jpg", desc.SuggestedName)
	}
}

func TestOwnerID_IsSecretChat(t *testing.T) {
	assert.False(t, OwnerID(0).IsSecretChat())
	assert.False(t, OwnerID(12345).IsSecretChat())
	assert.False(t, OwnerID(-100).IsSecretChat())
	assert.True(t, OwnerID(-2000000000001).IsSecretChat())
}
