package curve

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/libplotter/fn"
)

// SamplePoints evaluates f at numPoints+1 evenly spaced x values starting at
// x.Min. numPoints below 1 is treated as 1.
func SamplePoints(f fn.Function, x Range, numPoints int) []Point {
	if numPoints < 1 {
		numPoints = 1
	}

	step := (x.Max - x.Min) / float64(numPoints)

	points := make([]Point, 0, numPoints+1)

	for i := 0; i <= numPoints; i++ {
		px := x.Min + float64(i)*step
		points = append(points, Point{X: px, Y: f.Evaluate(px)})
	}

	return points
}

type DirectSampler struct{}

func (DirectSampler) Sample(f fn.Function, x Range, numPoints int) []Point {
	return SamplePoints(f, x, numPoints)
}

// CachedSampler memoizes sampled points by function spec, x range and point
// count. It runs no cleanup goroutine; expired entries are dropped on the
// next miss.
type CachedSampler struct {
	points *cache.Cache
}

func NewCachedSampler(ttl time.Duration) *CachedSampler {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &CachedSampler{
		points: cache.New(ttl, 0),
	}
}

func (s *CachedSampler) Sample(f fn.Function, x Range, numPoints int) []Point {
	spec, ok := fn.SpecOf(f)
	if !ok {
		return SamplePoints(f, x, numPoints)
	}

	key := s.genCachedKey(spec, x, numPoints)

	if i, ok := s.points.Get(key); ok {
		points, _ := i.([]Point)

		return append([]Point(nil), points...)
	}

	s.points.DeleteExpired()

	points := SamplePoints(f, x, numPoints)

	s.points.Set(key, points, cache.DefaultExpiration)

	return append([]Point(nil), points...)
}

func (s *CachedSampler) Len() int {
	return s.points.ItemCount()
}

func (s *CachedSampler) Flush() {
	s.points.Flush()
}

func (s *CachedSampler) genCachedKey(spec fn.Spec, x Range, numPoints int) string {
	return fmt.Sprintf("%s|%b|%b|%d", spec.Key(), x.Min, x.Max, numPoints)
}
