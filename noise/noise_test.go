package noise

import "testing"

func TestModelDims(t *testing.T) {
	if d := Isotropic(2, 0.5).Dim(); d != 2 {
		t.Errorf("isotropic dim: got %d, want 2", d)
	}
	if d := Diagonal(0.1, 0.1, 0.05).Dim(); d != 3 {
		t.Errorf("diagonal dim: got %d, want 3", d)
	}
}

func TestIsotropicSigmas(t *testing.T) {
	sigmas := Isotropic(3, 0.7).Sigmas()
	for i, s := range sigmas {
		if s != 0.7 {
			t.Errorf("sigma[%d] = %v, want 0.7", i, s)
		}
	}
}

func TestSigmasReturnsCopy(t *testing.T) {
	m := Diagonal(1, 2)
	s := m.Sigmas()
	s[0] = 99
	if m.Sigmas()[0] != 1 {
		t.Error("mutating the returned slice changed the model")
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(Isotropic(2, 1.0), 42)
	b := NewSampler(Isotropic(2, 1.0), 42)
	for i := 0; i < 10; i++ {
		sa, sb := a.Sample(), b.Sample()
		for j := range sa {
			if sa[j] != sb[j] {
				t.Fatalf("draw %d axis %d: %v != %v with identical seeds", i, j, sa[j], sb[j])
			}
		}
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	a := NewSampler(Isotropic(2, 1.0), 1)
	b := NewSampler(Isotropic(2, 1.0), 2)
	sa, sb := a.Sample(), b.Sample()
	if sa[0] == sb[0] && sa[1] == sb[1] {
		t.Error("different seeds produced identical first draw")
	}
}

func TestZeroSigmaSamplesAreZero(t *testing.T) {
	s := NewSampler(Diagonal(0, 0, 0.5), 7)
	for i := 0; i < 5; i++ {
		v := s.Sample()
		if v[0] != 0 || v[1] != 0 {
			t.Errorf("zero-sigma axes drew nonzero: %v", v)
		}
	}
}
