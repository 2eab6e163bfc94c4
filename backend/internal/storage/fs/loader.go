package fs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/itchan-dev/threadline/shared/domain"
	internal_errors "github.com/itchan-dev/threadline/shared/errors"
	"github.com/itchan-dev/threadline/shared/logger"
)

var ErrTimestamp = errors.New("unparseable timestamp")

const maxLineSize = 16 << 20

// LoadStats counts records seen by one load.
type LoadStats struct {
	Read      int `json:"read"`
	Malformed int `json:"malformed"`
}

// Storage reads normalized post and message exports from disk.
type Storage struct {
	rootPath string
	log      *slog.Logger
}

func New(rootPath string) (*Storage, error) {
	if rootPath == "" {
		rootPath = "."
	}
	p := filepath.Clean(rootPath)
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open input directory %s: %w", p, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input root %s is not a directory", p)
	}
	return &Storage{rootPath: p, log: logger.Component("loader")}, nil
}

func (s *Storage) path(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.rootPath, name)
}

// LoadPosts reads posts in file order. Lines that fail to decode are skipped and counted.
func (s *Storage) LoadPosts(name string) ([]domain.Post, LoadStats, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to open posts file: %w", err)
	}
	defer f.Close()
	return s.DecodePosts(f)
}

// LoadMessages reads messages in file order.
func (s *Storage) LoadMessages(name string) ([]domain.Message, LoadStats, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to open messages file: %w", err)
	}
	defer f.Close()
	return s.DecodeMessages(f)
}

func (s *Storage) DecodePosts(r io.Reader) ([]domain.Post, LoadStats, error) {
	var posts []domain.Post
	stats, err := s.decode(r, internal_errors.KindPost, func(raw []byte) error {
		var line postLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return err
		}
		posts = append(posts, line.record())
		return nil
	})
	return posts, stats, err
}

func (s *Storage) DecodeMessages(r io.Reader) ([]domain.Message, LoadStats, error) {
	var messages []domain.Message
	stats, err := s.decode(r, internal_errors.KindMessage, func(raw []byte) error {
		var line messageLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return err
		}
		messages = append(messages, line.record())
		return nil
	})
	return messages, stats, err
}

// decode feeds every record of a JSON Lines stream or a JSON array to add.
func (s *Storage) decode(r io.Reader, kind internal_errors.RecordKind, add func(raw []byte) error) (LoadStats, error) {
	var stats LoadStats
	br := bufio.NewReader(r)

	skip := func(line int, err error) {
		stats.Malformed++
		s.log.Debug("skipping record", "error", &internal_errors.RecordError{Kind: kind, Line: line, Reason: err.Error()})
	}

	first, err := firstByte(br)
	if err == io.EOF {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}

	if first == '[' {
		dec := json.NewDecoder(br)
		if _, err := dec.Token(); err != nil {
			return stats, fmt.Errorf("failed to read array: %w", err)
		}
		for i := 1; dec.More(); i++ {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return stats, fmt.Errorf("failed to read array element %d: %w", i, err)
			}
			stats.Read++
			if err := add(raw); err != nil {
				skip(i, err)
			}
		}
		return stats, nil
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; scanner.Scan(); line++ {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		stats.Read++
		if err := add(raw); err != nil {
			skip(line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read lines: %w", err)
	}
	return stats, nil
}

func firstByte(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
