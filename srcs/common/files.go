// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package common

import (
	"bufio"
	"os"
)

// ReadLinesFile reads a text file line by line.
//
// It returns a slice which contains each line of the file and an error if
// any, otherwise it returns nil.
func ReadLinesFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// WriteToFile writes a byte slice into a file, which is created if needed.
//
// It returns an error if any, otherwise it returns nil.
func WriteToFile(filename string, data []byte) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(data)

	return err
}

// CreateFolder creates a folder if it does not exist.
//
// It returns true if the folder was created and an error if any, otherwise
// it returns nil.
func CreateFolder(path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = os.MkdirAll(path, 0755); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// Contains checks if a slice of string contains a particular string.
func Contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}

	return false
}
