package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Ndacyayisenga-droid/hedera-services/common"
)

// Store is a filesystem-based backend.Store implementation - it stores the
// mapping of ids to values in binary files.
//
// Ids are banked by their highest byte: all records sharing the top 8 bits
// of the id live in one file, addressed by the remaining 56 bits times the
// record size. Leaf indexes are dense and land in a single bank; level-banked
// virtual paths of internal nodes get one file per tree level, so every bank
// file stays densely packed. Holes left by out-of-order writes are filled
// with the default record, so unset ids always read as the default.
//
// Bank files are opened lazily; concurrent readers are supported.
type Store[I common.Identifier, V any] struct {
	directory   string
	mu          sync.Mutex
	banks       map[byte]*os.File
	sizes       map[byte]int64 // current length of each bank file
	serializer  common.Serializer[V]
	itemSize    int // the amount of bytes per one value
	itemDefault V
}

const (
	bankShift = 56
	indexMask = (uint64(1) << bankShift) - 1
)

// NewStore constructs a new instance of the file Store.
// It needs a serializer of data items and the default value for a not-set item.
func NewStore[I common.Identifier, V any](directory string, serializer common.Serializer[V], itemDefault V) (*Store[I, V], error) {
	if err := os.MkdirAll(directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory; %w", err)
	}
	return &Store[I, V]{
		directory:   directory,
		banks:       map[byte]*os.File{},
		sizes:       map[byte]int64{},
		serializer:  serializer,
		itemSize:    serializer.Size(),
		itemDefault: itemDefault,
	}, nil
}

// itemPosition provides the bank and the offset of an item in the bank file
func (m *Store[I, V]) itemPosition(id I) (bank byte, offset int64) {
	bank = byte(uint64(id) >> bankShift)
	offset = int64(uint64(id)&indexMask) * int64(m.itemSize)
	return
}

// bankFile provides the file of the given bank, opening or creating it on
// first use. Requires the lock to be held.
func (m *Store[I, V]) bankFile(bank byte) (*os.File, error) {
	if file, exists := m.banks[bank]; exists {
		return file, nil
	}
	file, err := os.OpenFile(fmt.Sprintf("%s/%02X", m.directory, bank), os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open/create bank file %02X; %w", bank, err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat bank file %02X; %w", bank, err)
	}
	m.banks[bank] = file
	m.sizes[bank] = info.Size()
	return file, nil
}

// Set a value of an item
func (m *Store[I, V]) Set(id I, value V) error {
	bank, offset := m.itemPosition(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	file, err := m.bankFile(bank)
	if err != nil {
		return err
	}
	// fill a hole before the item with default records, so the hole reads
	// as unset items rather than as zeros
	if end := m.sizes[bank]; offset > end {
		filler := m.serializer.ToBytes(m.itemDefault)
		for ; end < offset; end += int64(m.itemSize) {
			if _, err := file.WriteAt(filler, end); err != nil {
				return fmt.Errorf("failed to extend bank file %02X; %w", bank, err)
			}
		}
	}
	if _, err := file.WriteAt(m.serializer.ToBytes(value), offset); err != nil {
		return fmt.Errorf("failed to write into bank file %02X; %w", bank, err)
	}
	if end := offset + int64(m.itemSize); end > m.sizes[bank] {
		m.sizes[bank] = end
	}
	return nil
}

// Get a value of the item (or the itemDefault, if not set)
func (m *Store[I, V]) Get(id I) (V, error) {
	bank, offset := m.itemPosition(id)
	m.mu.Lock()
	file, err := m.bankFile(bank)
	m.mu.Unlock()
	if err != nil {
		return m.itemDefault, err
	}
	bytes := make([]byte, m.itemSize)
	n, err := file.ReadAt(bytes, offset)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if n == 0 {
				return m.itemDefault, nil // the item does not exist in the bank file (the file is shorter)
			}
			return m.itemDefault, fmt.Errorf("unable to read - bank file %02X is corrupted", bank)
		}
		return m.itemDefault, err
	}
	return m.serializer.FromBytes(bytes), nil
}

// Flush all the bank files
func (m *Store[I, V]) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	errs := make([]error, 0, len(m.banks))
	for bank, file := range m.banks {
		if err := file.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("failed to sync bank file %02X; %w", bank, err))
		}
	}
	return errors.Join(errs...)
}

// GetSizeOnDisk provides the summed size of all bank files on disk
func (m *Store[I, V]) GetSizeOnDisk() (int64, error) {
	entries, err := os.ReadDir(m.directory)
	if err != nil {
		return 0, err
	}
	var size int64
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return 0, err
		}
		size += info.Size()
	}
	return size, nil
}

// Close the store
func (m *Store[I, V]) Close() error {
	err := m.Flush()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, file := range m.banks {
		err = errors.Join(err, file.Close())
	}
	m.banks = map[byte]*os.File{}
	m.sizes = map[byte]int64{}
	return err
}
