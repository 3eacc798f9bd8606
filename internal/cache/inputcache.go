// Package cache persists benchmark inputs (factors and G1 points) keyed by
// size exponent, so repeated runs over the same 2^exp sizes reuse one vector
// set instead of regenerating it.
package cache

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/rs/zerolog"
)

type factorFile struct {
	Exp     int      `json:"exp"`
	N       int      `json:"n"`
	Bits    int      `json:"bits"`
	Factors []string `json:"factors_hex"` // hex (no 0x prefix)
}

type pointFile struct {
	Exp    int      `json:"exp"`
	N      int      `json:"n"`
	Points []string `json:"points_b64"` // base64(G1Affine.Marshal())
}

// Cache reads and writes input vectors under Dir/factors and Dir/points.
type Cache struct {
	Dir string
	Log zerolog.Logger
}

func New(dir string, log zerolog.Logger) *Cache {
	return &Cache{Dir: dir, Log: log}
}

func (c *Cache) factorPath(exp int) (string, error) {
	dir := filepath.Join(c.Dir, "factors")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("make factors dir: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf("exp_%d_factors.json", exp)), nil
}

func (c *Cache) pointPath(exp int) (string, error) {
	dir := filepath.Join(c.Dir, "points")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("make points dir: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf("exp_%d_points.json", exp)), nil
}

// SaveFactors writes factors for one size exponent.
func (c *Cache) SaveFactors(exp, bits int, factors []*big.Int) error {
	path, err := c.factorPath(exp)
	if err != nil {
		return err
	}
	ff := factorFile{
		Exp:     exp,
		N:       len(factors),
		Bits:    bits,
		Factors: make([]string, len(factors)),
	}
	for i := range factors {
		ff.Factors[i] = factors[i].Text(16)
	}
	data, err := json.MarshalIndent(&ff, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFactors reads factors for one size exponent, returning the stored bit
// length alongside.
func (c *Cache) LoadFactors(exp int) ([]*big.Int, int, error) {
	path, err := c.factorPath(exp)
	if err != nil {
		return nil, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var ff factorFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, 0, err
	}
	if ff.N != len(ff.Factors) {
		return nil, ff.Bits, fmt.Errorf("factor cache malformed: n=%d, got %d factors", ff.N, len(ff.Factors))
	}
	out := make([]*big.Int, ff.N)
	for i := range out {
		f, ok := new(big.Int).SetString(ff.Factors[i], 16)
		if !ok {
			return nil, ff.Bits, fmt.Errorf("invalid factor hex at %d", i)
		}
		out[i] = f
	}
	return out, ff.Bits, nil
}

// SavePoints writes points for one size exponent.
func (c *Cache) SavePoints(exp int, points []bn254.G1Affine) error {
	path, err := c.pointPath(exp)
	if err != nil {
		return err
	}
	pf := pointFile{
		Exp:    exp,
		N:      len(points),
		Points: make([]string, len(points)),
	}
	for i := range points {
		pf.Points[i] = base64.StdEncoding.EncodeToString(points[i].Marshal())
	}
	data, err := json.MarshalIndent(&pf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadPoints reads points for one size exponent.
func (c *Cache) LoadPoints(exp int) ([]bn254.G1Affine, error) {
	path, err := c.pointPath(exp)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf pointFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	if pf.N != len(pf.Points) {
		return nil, fmt.Errorf("point cache malformed: n=%d, got %d points", pf.N, len(pf.Points))
	}
	out := make([]bn254.G1Affine, pf.N)
	for i := range out {
		raw, err := base64.StdEncoding.DecodeString(pf.Points[i])
		if err != nil {
			return nil, fmt.Errorf("invalid point b64 at %d: %w", i, err)
		}
		if err := out[i].Unmarshal(raw); err != nil {
			return nil, fmt.Errorf("unmarshal point %d: %w", i, err)
		}
	}
	return out, nil
}

// LoadOrCreateInputs returns n factors of the requested bit length and n
// points for the given exponent, loading them from the cache when a valid
// file exists and generating + saving them otherwise. The bool reports
// whether both vectors came from the cache.
func (c *Cache) LoadOrCreateInputs(
	exp, n, bits int,
	genFactors func(n, bits int) ([]*big.Int, error),
	genPoints func(n int) ([]bn254.G1Affine, error),
) ([]*big.Int, []bn254.G1Affine, bool, error) {

	factors, fCached := c.loadOrCreateFactors(exp, n, bits, genFactors)
	if factors == nil {
		fresh, err := genFactors(n, bits)
		if err != nil {
			return nil, nil, false, err
		}
		if err := c.SaveFactors(exp, bits, fresh); err != nil {
			return nil, nil, false, err
		}
		factors = fresh
	}

	points, pCached := c.loadOrCreatePoints(exp, n)
	if points == nil {
		fresh, err := genPoints(n)
		if err != nil {
			return nil, nil, false, err
		}
		if err := c.SavePoints(exp, fresh); err != nil {
			return nil, nil, false, err
		}
		points = fresh
	}

	return factors, points, fCached && pCached, nil
}

func (c *Cache) loadOrCreateFactors(exp, n, bits int, gen func(int, int) ([]*big.Int, error)) ([]*big.Int, bool) {
	factors, storedBits, err := c.LoadFactors(exp)
	if err == nil && len(factors) == n && storedBits == bits {
		c.Log.Debug().Int("exp", exp).Int("n", n).Msg("factors loaded from cache")
		return factors, true
	}
	if err != nil && !os.IsNotExist(err) {
		c.Log.Warn().Err(err).Int("exp", exp).Msg("factor cache invalid, regenerating")
	}
	return nil, false
}

func (c *Cache) loadOrCreatePoints(exp, n int) ([]bn254.G1Affine, bool) {
	points, err := c.LoadPoints(exp)
	if err == nil && len(points) == n {
		c.Log.Debug().Int("exp", exp).Int("n", n).Msg("points loaded from cache")
		return points, true
	}
	if err != nil && !os.IsNotExist(err) {
		c.Log.Warn().Err(err).Int("exp", exp).Msg("point cache invalid, regenerating")
	}
	return nil, false
}
