package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hrasity/pcd/internal/device"
	"github.com/hrasity/pcd/internal/host"
	"github.com/zeebo/blake3"
)

// selfTestOverflow is how many bytes beyond capacity the self-test
// offers the device, to prove the write clamp.
const selfTestOverflow = 88

// runSelfTest drives the device through its documented edge behavior: an
// oversized write clamps to capacity, a write at the end fails with "no
// space", and a seek back to the start reads the written data back
// intact. Integrity of the full round-trip is checked by comparing
// BLAKE3 sums of the written and re-read contents.
func runSelfTest(file *host.OpenFile, capacity int64) error {
	pattern := make([]byte, capacity+selfTestOverflow)
	for i := range pattern {
		pattern[i] = byte(i % 251) //nolint:mnd
	}

	n, err := file.Write(pattern)
	if err != nil {
		return fmt.Errorf("oversized write: %w", err)
	}
	if int64(n) != capacity {
		return fmt.Errorf("%w: oversized write returned %d, want %d",
			errSelfTest, n, capacity)
	}
	slog.Info("Oversized write clamped to capacity.", "written", n)

	if _, err := file.Write([]byte{0x00}); !errors.Is(err, device.ErrNoSpace) {
		return fmt.Errorf("%w: write at capacity returned %v, want %v",
			errSelfTest, err, device.ErrNoSpace)
	}
	slog.Info("Write at capacity rejected.", "errno", device.Errno(device.ErrNoSpace))

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek to start: %w", err)
	}

	head := make([]byte, 100) //nolint:mnd
	if _, err := io.ReadFull(file, head); err != nil {
		return fmt.Errorf("read head: %w", err)
	}
	if !bytes.Equal(head, pattern[:len(head)]) {
		return fmt.Errorf("%w: head read does not match written data", errSelfTest)
	}
	slog.Info("Head read matches written data.", "bytes", len(head))

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek to start: %w", err)
	}

	readBack := make([]byte, capacity)
	if _, err := io.ReadFull(file, readBack); err != nil {
		return fmt.Errorf("read full device: %w", err)
	}

	wantSum := blake3.Sum256(pattern[:capacity])
	gotSum := blake3.Sum256(readBack)
	if wantSum != gotSum {
		return fmt.Errorf("%w: BLAKE3 sum mismatch after round-trip", errSelfTest)
	}
	slog.Info("Round-trip BLAKE3 sums match.", "sum", fmt.Sprintf("%x", gotSum[:8]))

	return nil
}

// errSelfTest is an error that occurs when the device deviates from its
// documented behavior during the self-test.
var errSelfTest = errors.New("self-test expectation violated")
