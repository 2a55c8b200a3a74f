package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/log"
	"github.com/mandinga/gateway/domain/records"
)

type fileRepo struct {
	path string
}

// NewFile stores the zone as one pretty-printed JSON object at path. The
// file and its directory are created on first use.
func NewFile(path string) records.Repository {
	return &fileRepo{path: path}
}

func (r *fileRepo) Load(c ctx.Ctx) (records.ZoneData, error) {
	if err := r.ensure(); err != nil {
		c.WithFields(log.Fields{"path": r.path, "err": err}).Error("ensure records file failed")
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, xerrors.Errorf("read %s: %w", r.path, err)
	}
	data := records.ZoneData{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, xerrors.Errorf("parse %s: %w", r.path, err)
	}
	if data == nil {
		data = records.ZoneData{}
	}
	return data, nil
}

// Save replaces the file atomically: write a sibling temp file, sync, rename.
func (r *fileRepo) Save(c ctx.Ctx, data records.ZoneData) error {
	if data == nil {
		data = records.ZoneData{}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return xerrors.Errorf("marshal records: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return xerrors.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return xerrors.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return xerrors.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return xerrors.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return xerrors.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return xerrors.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return xerrors.Errorf("rename to %s: %w", r.path, err)
	}
	c.WithFields(log.Fields{"path": r.path, "names": len(data)}).Debug("records saved")
	return nil
}

func (r *fileRepo) Ping(c ctx.Ctx) error {
	if err := r.ensure(); err != nil {
		return err
	}
	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	return f.Close()
}

func (r *fileRepo) ensure() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, []byte("{}"), 0o644)
}
