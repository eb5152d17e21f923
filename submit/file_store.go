// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package submit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/sirupsen/logrus"
)

const (
	SignedTransactionExt = ".stxn"
	TransactionExt       = ".txn"
)

// FileStore is a Submitter that saves signed transactions to a directory,
// one file per submission named after the first transaction ID
type FileStore struct {
	dir    string
	perm   os.FileMode
	logger *logrus.Entry
}

type FileStoreOptionFunc func(*FileStore)

// WithLogger sets the logger for saved files
func WithLogger(logger *logrus.Entry) FileStoreOptionFunc {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// WithFileMode sets the permissions of created files
func WithFileMode(perm os.FileMode) FileStoreOptionFunc {
	return func(s *FileStore) {
		s.perm = perm
	}
}

func NewFileStore(dir string, opts ...FileStoreOptionFunc) *FileStore {
	s := &FileStore{
		dir:  dir,
		perm: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.logger = logrus.NewEntry(l)
	}
	return s
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Submit checks that raw holds well-formed signed transactions and writes it
// to <dir>/<txid>.stxn
func (s *FileStore) Submit(ctx context.Context, raw []byte) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}
	stxns, err := ledger.DecodeSignedTransactions(raw)
	if err != nil {
		return Status{}, err
	}
	txid := stxns[0].ID()
	path, err := s.write(txid+SignedTransactionExt, raw)
	if err != nil {
		return Status{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"txid":         txid,
		"path":         path,
		"transactions": len(stxns),
	}).Info("saved signed transactions")
	return Status{TxID: txid, Path: path}, nil
}

// SaveTransaction writes an unsigned transaction to <dir>/<txid>.txn
func (s *FileStore) SaveTransaction(ctx context.Context, txn ledger.Transaction) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}
	txid := txn.ID()
	path, err := s.write(txid+TransactionExt, txn.Encode())
	if err != nil {
		return Status{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"txid": txid,
		"path": path,
	}).Info("saved transaction")
	return Status{TxID: txid, Path: path}, nil
}

func (s *FileStore) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, s.perm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
