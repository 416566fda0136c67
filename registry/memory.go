package registry

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/john-rice/td/common"
)

// Memory is an in-process FileRegistry used by tests and the CLI.
// Handles are deduplicated by location key.
type Memory struct {
	lock    sync.Mutex
	nextId  int32
	handles *cache.Cache // location key -> FileRef
	files   map[int32]*FileDescriptor
	content map[int32][]byte
}

func NewMemory() *Memory {
	return &Memory{
		nextId:  1,
		handles: cache.New(cache.NoExpiration, 30*time.Minute),
		files:   make(map[int32]*FileDescriptor),
		content: make(map[int32][]byte),
	}
}

func (m *Memory) RegisterRemote(loc RemoteLocation, source LocationSource, owner OwnerID, declaredSize int32, altSizeHint int32, suggestedName string) FileRef {
	m.lock.Lock()
	defer m.lock.Unlock()

	key := loc.key()
	if v, ok := m.handles.Get(key); ok {
		return v.(FileRef)
	}

	ref := FileRef{id: m.nextId}
	m.nextId++
	m.handles.SetDefault(key, ref)

	size := declaredSize
	if size == 0 {
		size = altSizeHint
	}
	m.files[ref.id] = &FileDescriptor{
		Ref:           ref,
		DeclaredSize:  size,
		SuggestedName: suggestedName,
		Url:           loc.Url,
	}
	return ref
}

func (m *Memory) SetContent(ref FileRef, data []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.content[ref.id] = append([]byte(nil), data...)
}

// Content returns the bytes uploaded for a handle, or nil.
func (m *Memory) Content(ref FileRef) []byte {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.content[ref.id]
}

func (m *Memory) ResolvePersistentId(id string, fileType FileType) (FileRef, error) {
	if id == "" {
		return FileRef{}, errors.Wrap(common.ErrUnknownPersistentId, "registry: empty persistent id")
	}
	return m.RegisterRemote(RemoteLocation{FileType: fileType, Url: id}, FromServer, 0, 0, 0, ""), nil
}

func (m *Memory) GetFileDescriptor(ref FileRef) *FileDescriptor {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.files[ref.id]
}
