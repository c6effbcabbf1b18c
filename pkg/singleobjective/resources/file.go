package resources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

// shiftRowWidth is the number of values per row of the CEC2014 composition
// shift files. Each row holds one component; only the first dim are used.
const shiftRowWidth = 100

// FileProvider reads the text tables distributed with the competition code.
//
// CEC2013 layout: M_D<dim>.txt and shift_data.txt, read sequentially.
// CEC2014 layout: M_<id>_D<dim>.txt, shift_data_<id>.txt and, for hybrid
// problems, shuffle_data_<id>_D<dim>.txt holding 1-based indices.
type FileProvider struct {
	fsys fs.FS

	// OrthogonalityTolerance enables the M·Mᵀ = I check when positive.
	OrthogonalityTolerance float64
}

var _ Provider = &FileProvider{}

// NewFileProvider returns a provider rooted at fsys, typically os.DirFS(dir).
func NewFileProvider(fsys fs.FS) *FileProvider {
	return &FileProvider{fsys: fsys}
}

func (p *FileProvider) Load(ctx context.Context, suite framework.Suite, id, dim int) (*Tables, error) {
	logger := klog.FromContext(ctx)
	if err := suite.Validate(id, dim); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	}
	req := Requirements(suite, id)

	var (
		t   *Tables
		err error
	)
	switch suite {
	case framework.CEC2013:
		t, err = p.load2013(dim, req)
	case framework.CEC2014:
		t, err = p.load2014(id, dim, req)
	}
	if err != nil {
		return nil, err
	}
	if err := t.Validate(dim, req); err != nil {
		return nil, err
	}
	if p.OrthogonalityTolerance > 0 {
		if err := t.CheckOrthogonal(req.RotationBlocks, p.OrthogonalityTolerance); err != nil {
			return nil, err
		}
	}
	logger.V(4).Info("Loaded benchmark tables", "suite", suite, "problem", id, "dimension", dim,
		"shiftBlocks", req.ShiftBlocks, "rotationBlocks", req.RotationBlocks, "shuffleBlocks", req.ShuffleBlocks)
	return t, nil
}

func (p *FileProvider) load2013(dim int, req Requirement) (*Tables, error) {
	rotation, err := p.readFloats(fmt.Sprintf("M_D%d.txt", dim), req.RotationBlocks*dim*dim)
	if err != nil {
		return nil, err
	}
	shift, err := p.readFloats("shift_data.txt", req.ShiftBlocks*dim)
	if err != nil {
		return nil, err
	}
	return &Tables{Dimension: dim, Shift: shift, Rotation: rotation}, nil
}

func (p *FileProvider) load2014(id, dim int, req Requirement) (*Tables, error) {
	rotation, err := p.readFloats(fmt.Sprintf("M_%d_D%d.txt", id, dim), req.RotationBlocks*dim*dim)
	if err != nil {
		return nil, err
	}

	shiftFile := fmt.Sprintf("shift_data_%d.txt", id)
	var shift []float64
	if req.ShiftBlocks == 1 {
		shift, err = p.readFloats(shiftFile, dim)
	} else {
		shift, err = p.readRows(shiftFile, req.ShiftBlocks, dim)
	}
	if err != nil {
		return nil, err
	}

	t := &Tables{Dimension: dim, Shift: shift, Rotation: rotation}
	if req.ShuffleBlocks > 0 {
		raw, err := p.readFloats(fmt.Sprintf("shuffle_data_%d_D%d.txt", id, dim), req.ShuffleBlocks*dim)
		if err != nil {
			return nil, err
		}
		t.Shuffle = make([]int, len(raw))
		for i, v := range raw {
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: shuffle_data_%d_D%d.txt: non integral index %v", ErrResourceCorrupt, id, dim, v)
			}
			t.Shuffle[i] = int(v) - 1
		}
	}
	return t, nil
}

// readRows reads rows of shiftRowWidth values and keeps the first dim of each.
func (p *FileProvider) readRows(name string, rows, dim int) ([]float64, error) {
	all, err := p.readFloats(name, (rows-1)*shiftRowWidth+dim)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, rows*dim)
	for r := 0; r < rows; r++ {
		out = append(out, all[r*shiftRowWidth:r*shiftRowWidth+dim]...)
	}
	return out, nil
}

// readFloats reads the first n whitespace separated numbers of a file.
func (p *FileProvider) readFloats(name string, n int) ([]float64, error) {
	f, err := p.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	out := make([]float64, 0, n)
	for len(out) < n && scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: value %d: %v", ErrResourceCorrupt, name, len(out), err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(out) < n {
		return nil, fmt.Errorf("%w: %s has %d values, want %d", ErrResourceCorrupt, name, len(out), n)
	}
	return out, nil
}
