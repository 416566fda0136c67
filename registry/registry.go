package registry

import (
	"strconv"
)

// FileRef is an opaque, registry-issued handle standing in for content
// that may not have been downloaded yet. The zero value is invalid and
// means "no content".
type FileRef struct {
	id int32
}

func NewFileRef(id int32) FileRef {
	return FileRef{id: id}
}

func (r FileRef) IsValid() bool {
	return r.id > 0
}

// Value exposes the numeric identity for ordering and display.
func (r FileRef) Value() int32 {
	return r.id
}

func (r FileRef) String() string {
	return "file#" + strconv.Itoa(int(r.id))
}

// FileType tells the registry what kind of content a handle refers to.
type FileType int

const (
	FileTypeNone FileType = iota
	FileTypePhoto
	FileTypeThumbnail
	FileTypeEncryptedThumbnail
	FileTypeAnimation
	FileTypeVideo
)

func (t FileType) String() string {
	switch t {
	case FileTypePhoto:
		return "photo"
	case FileTypeThumbnail:
		return "thumbnail"
	case FileTypeEncryptedThumbnail:
		return "encrypted_thumbnail"
	case FileTypeAnimation:
		return "animation"
	case FileTypeVideo:
		return "video"
	default:
		return "none"
	}
}

// LocationSource records who supplied a remote location.
type LocationSource int

const (
	FromServer LocationSource = iota
	FromUser
)

// OwnerID identifies the dialog a preview belongs to. Secret chats use
// the range below zeroSecretChatId.
type OwnerID int64

const zeroSecretChatId OwnerID = -2000000000000

func (o OwnerID) IsSecretChat() bool {
	return o < zeroSecretChatId
}

// RemoteLocation describes where registered content lives. Either the
// id/hash/dc triple is set (server file) or Url is set (web file); the
// registry keys deduplication on whichever is present plus SourceKey.
type RemoteLocation struct {
	FileType      FileType
	ID            int64
	AccessHash    int64
	DcID          int32
	FileReference []byte
	SourceKey     string
	Url           string
}

func (l RemoteLocation) key() string {
	if l.Url != "" {
		return "web/" + l.FileType.String() + "/" + l.Url
	}
	return "common/" + l.SourceKey + "/" + strconv.FormatInt(l.ID, 10) + "/" + strconv.FormatInt(l.AccessHash, 10)
}

// FileDescriptor is the outward-facing shape of a registered file.
type FileDescriptor struct {
	Ref           FileRef
	DeclaredSize  int32
	SuggestedName string
	Url           string
}

// FileRegistry is the external file-identity collaborator. Implementations
// own deduplication and content storage; this core only produces handles.
type FileRegistry interface {
	RegisterRemote(loc RemoteLocation, source LocationSource, owner OwnerID, declaredSize int32, altSizeHint int32, suggestedName string) FileRef
	SetContent(ref FileRef, data []byte)
	ResolvePersistentId(id string, fileType FileType) (FileRef, error)
	GetFileDescriptor(ref FileRef) *FileDescriptor
}
