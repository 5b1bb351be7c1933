package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
)

const bufferSize = 8192

// CompareFiles reports whether two files hold exactly the same bytes.
func CompareFiles(left, right string) (bool, error) {
	leftFile, err := os.Open(path.Clean(left))

	if err != nil {
		return false, fmt.Errorf("failed to open file for left-hand comparison: %w", err)
	}

	defer leftFile.Close()

	rightFile, err := os.Open(path.Clean(right))

	if err != nil {
		return false, fmt.Errorf("failed to open file for right-hand comparison: %w", err)
	}

	defer rightFile.Close()

	leftBuffer := make([]byte, bufferSize)
	rightBuffer := make([]byte, bufferSize)

	for {
		leftCount, leftErr := readChunk(leftFile, leftBuffer)

		if leftErr != nil {
			return false, fmt.Errorf("error reading file for left-hand comparison: %w", leftErr)
		}

		rightCount, rightErr := readChunk(rightFile, rightBuffer)

		if rightErr != nil {
			return false, fmt.Errorf("error reading file for right-hand comparison: %w", rightErr)
		}

		if leftCount != rightCount || !bytes.Equal(leftBuffer[:leftCount], rightBuffer[:rightCount]) {
			return false, nil
		}

		// A short chunk is the last one
		if leftCount < bufferSize {
			return true, nil
		}
	}
}

// readChunk fills the buffer unless the file ends first.
func readChunk(reader io.Reader, buffer []byte) (int, error) {
	count, err := io.ReadFull(reader, buffer)

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return count, nil
	}

	return count, err
}
