package generating

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// sampler reproduz a sequência do gerador legado semeado por inteiro:
// MT19937 de 32 bits, doubles de 53 bits e normal pelo método polar
// com o segundo desvio guardado para a próxima chamada.
type sampler struct {
	src      *prng.MT19937
	hasGauss bool
	gauss    float64
}

func newSampler(seed uint32) *sampler {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return &sampler{src: src}
}

// float64 retorna um valor uniforme em [0, 1) com 53 bits de precisão
func (s *sampler) float64() float64 {
	a := s.src.Uint32() >> 5
	b := s.src.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

func (s *sampler) standardNormal() float64 {
	if s.hasGauss {
		s.hasGauss = false
		return s.gauss
	}

	var x1, x2, r2 float64
	for {
		x1 = 2.0*s.float64() - 1.0
		x2 = 2.0*s.float64() - 1.0
		r2 = x1*x1 + x2*x2
		if r2 < 1.0 && r2 != 0.0 {
			break
		}
	}

	f := math.Sqrt(-2.0 * math.Log(r2) / r2)
	s.gauss = f * x1
	s.hasGauss = true
	return f * x2
}

func (s *sampler) normal(mean, stddev float64) float64 {
	return mean + stddev*s.standardNormal()
}

// uniform retorna um valor em [low, high)
func (s *sampler) uniform(low, high float64) float64 {
	return low + (high-low)*s.float64()
}

func (s *sampler) normals(n int, mean, stddev float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.normal(mean, stddev)
	}
	return out
}

func (s *sampler) uniforms(n int, low, high float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.uniform(low, high)
	}
	return out
}
