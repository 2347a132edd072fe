package fields

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/codetable"
	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/extract"
)

// Registry holds the processor for every supported box. It is built once at
// startup; a table that fails to load is fatal for the whole registry because
// without the table there is no default code to fall back to.
type Registry struct {
	procs  []*Processor
	byBox  map[constants.Box]*Processor
	tables *codetable.Registry
}

type tableSpec struct {
	box     constants.Box
	file    string
	builtin func() (*codetable.Table, error)
	signal  []string
}

func specs() []tableSpec {
	return []tableSpec{
		{constants.BoxTransactionType, transactionTypeFile, transactionTypeTable, transactionSignalKeys},
		{constants.BoxTransportMode, transportModeFile, transportModeTable, transportSignalKeys},
		{constants.BoxPackageType, packageTypeFile, packageTypeTable, packageSignalKeys},
		{constants.BoxRegimeType, regimeTypeFile, regimeTypeTable, regimeSignalKeys},
	}
}

// NewRegistry loads all box tables (builtin, overridden per box by a CSV file
// in cfg.Dir when present) and builds their processors.
func NewRegistry(cfg common.TablesConfig, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var tables []*codetable.Table
	r := &Registry{byBox: make(map[constants.Box]*Processor)}

	for _, s := range specs() {
		tbl, source, err := loadTable(s, cfg.Dir)
		if err != nil {
			return nil, common.NewAppError("TABLE_LOAD", fmt.Sprintf("box %s", s.box), errors.Join(common.ErrTableLoad, err))
		}
		logger.Info("codetable.loaded", "box", s.box, "entries", tbl.Len(), "default", tbl.Default().Code, "source", source)

		proc := NewProcessor(s.box, tbl, s.signal, logger)
		r.procs = append(r.procs, proc)
		r.byBox[s.box] = proc
		tables = append(tables, tbl)
	}

	reg, err := codetable.NewRegistry(tables...)
	if err != nil {
		return nil, common.NewAppError("TABLE_LOAD", "registry", errors.Join(common.ErrTableLoad, err))
	}
	r.tables = reg
	return r, nil
}

func loadTable(s tableSpec, dir string) (*codetable.Table, string, error) {
	if dir != "" {
		path := filepath.Join(dir, s.file)
		if _, err := os.Stat(path); err == nil {
			tbl, err := codetable.LoadFile(s.box.String(), path)
			if err != nil {
				return nil, "", err
			}
			return tbl, path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
	}
	tbl, err := s.builtin()
	if err != nil {
		return nil, "", err
	}
	return tbl, "builtin", nil
}

// Processors returns all processors in declaration-form order.
func (r *Registry) Processors() []*Processor {
	out := make([]*Processor, len(r.procs))
	copy(out, r.procs)
	return out
}

// Get returns the processor for a box, or an error when no table was loaded
// for it. Classification for that box must be refused, not defaulted.
func (r *Registry) Get(box constants.Box) (*Processor, error) {
	p, ok := r.byBox[box]
	if !ok {
		return nil, fmt.Errorf("no processor for box %s", box)
	}
	return p, nil
}

// Tables exposes the underlying code table registry.
func (r *Registry) Tables() *codetable.Registry { return r.tables }

// ProcessAll runs every processor over the document and returns the outcomes
// keyed by box value, in form order.
func (r *Registry) ProcessAll(doc extract.DocumentData) map[constants.Box]string {
	out := make(map[constants.Box]string, len(r.procs))
	for _, p := range r.procs {
		out[p.Box()] = p.BoxValue(doc)
	}
	return out
}
