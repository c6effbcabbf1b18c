// Package functions contains the elementary landscapes of the CEC
// single-objective suites. Every function takes coordinates that are already
// shifted, scaled and rotated, does not modify its input and returns 0 for an
// empty vector.
package functions

import "math"

// Func maps a point to its landscape value.
type Func func(z []float64) float64

// Sphere is the sum of squares.
func Sphere(z []float64) float64 {
	f := 0.0
	for _, v := range z {
		f += v * v
	}
	return f
}

// Ellipsoidal weights coordinate i by 10^(6·i/(n-1)).
func Ellipsoidal(z []float64) float64 {
	n := len(z)
	f := 0.0
	for i, v := range z {
		f += math.Pow(10.0, exponent(6.0, i, n)) * v * v
	}
	return f
}

// BentCigar is z_1^2 + 10^6·Σ_{i>1} z_i^2.
func BentCigar(z []float64) float64 {
	if len(z) == 0 {
		return 0
	}
	f := z[0] * z[0]
	for _, v := range z[1:] {
		f += math.Pow(10.0, 6.0) * v * v
	}
	return f
}

// Discus is 10^6·z_1^2 + Σ_{i>1} z_i^2.
func Discus(z []float64) float64 {
	if len(z) == 0 {
		return 0
	}
	f := math.Pow(10.0, 6.0) * z[0] * z[0]
	for _, v := range z[1:] {
		f += v * v
	}
	return f
}

// DifferentPowers is sqrt(Σ |z_i|^(2+4·i/(n-1))). The exponent uses integer
// division, as the published reference code does.
func DifferentPowers(z []float64) float64 {
	n := len(z)
	f := 0.0
	for i, v := range z {
		e := 2
		if n > 1 {
			e += 4 * i / (n - 1)
		}
		f += math.Pow(math.Abs(v), float64(e))
	}
	return math.Pow(f, 0.5)
}

// Rosenbrock evaluates the Rosenbrock valley with the optimum moved to the origin.
func Rosenbrock(z []float64) float64 {
	f := 0.0
	for i := 0; i+1 < len(z); i++ {
		zi, zn := z[i]+1, z[i+1]+1
		t1 := zi*zi - zn
		t2 := zi - 1.0
		f += 100.0*t1*t1 + t2*t2
	}
	return f
}

// SchafferF7 is Schaffer's F7 on consecutive coordinate pairs.
func SchafferF7(z []float64) float64 {
	n := len(z)
	if n < 2 {
		return 0
	}
	f := 0.0
	for i := 0; i < n-1; i++ {
		si := math.Pow(z[i]*z[i]+z[i+1]*z[i+1], 0.5)
		t := math.Sin(50.0 * math.Pow(si, 0.2))
		f += math.Pow(si, 0.5) + math.Pow(si, 0.5)*t*t
	}
	return f * f / float64(n-1) / float64(n-1)
}

// Ackley is Ackley's function.
func Ackley(z []float64) float64 {
	n := len(z)
	if n == 0 {
		return 0
	}
	sum1, sum2 := 0.0, 0.0
	for _, v := range z {
		sum1 += v * v
		sum2 += math.Cos(2.0 * math.Pi * v)
	}
	sum1 = -0.2 * math.Sqrt(sum1/float64(n))
	sum2 /= float64(n)
	return math.E - 20.0*math.Exp(sum1) - math.Exp(sum2) + 20.0
}

// Weierstrass uses a = 0.5, b = 3 and k_max = 20.
func Weierstrass(z []float64) float64 {
	const (
		a    = 0.5
		b    = 3.0
		kMax = 20
	)
	f, sum2 := 0.0, 0.0
	for _, v := range z {
		sum := 0.0
		sum2 = 0.0
		for j := 0; j <= kMax; j++ {
			aj := math.Pow(a, float64(j))
			bj := math.Pow(b, float64(j))
			sum += aj * math.Cos(2.0*math.Pi*bj*(v+0.5))
			sum2 += aj * math.Cos(2.0*math.Pi*bj*0.5)
		}
		f += sum
	}
	return f - float64(len(z))*sum2
}

// Griewank is Griewank's function.
func Griewank(z []float64) float64 {
	s, p := 0.0, 1.0
	for i, v := range z {
		s += v * v
		p *= math.Cos(v / math.Sqrt(1.0+float64(i)))
	}
	return 1.0 + s/4000.0 - p
}

// Rastrigin is Rastrigin's function.
func Rastrigin(z []float64) float64 {
	f := 0.0
	for _, v := range z {
		f += v*v - 10.0*math.Cos(2.0*math.Pi*v) + 10.0
	}
	return f
}

// Schwefel is the modified Schwefel function. Coordinates are moved by
// 420.9687462275036 and the ones leaving [-500, 500] are folded back with a
// quadratic penalty.
func Schwefel(z []float64) float64 {
	n := float64(len(z))
	f := 0.0
	for _, v := range z {
		zi := v + 4.209687462275036e+002
		switch {
		case zi > 500:
			m := math.Mod(zi, 500)
			f -= (500.0 - m) * math.Sin(math.Pow(500.0-m, 0.5))
			t := (zi - 500.0) / 100
			f += t * t / n
		case zi < -500:
			m := math.Mod(math.Abs(zi), 500)
			f -= (-500.0 + m) * math.Sin(math.Pow(500.0-m, 0.5))
			t := (zi + 500.0) / 100
			f += t * t / n
		default:
			f -= zi * math.Sin(math.Pow(math.Abs(zi), 0.5))
		}
	}
	return 4.189828872724338e+002*n + f
}

// Katsuura is Katsuura's function with 32 binary digits per coordinate.
func Katsuura(z []float64) float64 {
	n := len(z)
	if n == 0 {
		return 0
	}
	t3 := math.Pow(float64(n), 1.2)
	f := 1.0
	for i, v := range z {
		temp := 0.0
		for j := 1; j <= 32; j++ {
			t1 := math.Pow(2.0, float64(j))
			t2 := t1 * v
			temp += math.Abs(t2-math.Floor(t2+0.5)) / t1
		}
		f *= math.Pow(1.0+float64(i+1)*temp, 10.0/t3)
	}
	t1 := 10.0 / float64(n) / float64(n)
	return f*t1 - t1
}

// LunacekBiRastrigin evaluates the double-funnel Rastrigin. x holds the
// sign-adjusted coordinates measured from the first funnel centre mu0 = 2.5
// and c the coordinates fed to the cosine term.
func LunacekBiRastrigin(x, c []float64) float64 {
	const (
		mu0 = 2.5
		d   = 1.0
	)
	n := len(x)
	if n == 0 {
		return 0
	}
	s := 1.0 - 1.0/(2.0*math.Pow(float64(n)+20.0, 0.5)-8.2)

	cs := 0.0
	for _, v := range c {
		cs += math.Cos(2.0 * math.Pi * v)
	}
	rastrigin := 10.0 * (float64(n) - cs)

	t1 := 0.0
	for _, v := range x {
		t := v + mu0 - mu0
		t1 += t * t
	}
	// The second funnel only exists for s > 0, which needs n >= 2.
	if s <= 0 {
		return t1 + rastrigin
	}

	mu1 := -math.Pow((mu0*mu0-d)/s, 0.5)
	t2 := 0.0
	for _, v := range x {
		t := v + mu0 - mu1
		t2 += t * t
	}
	t2 = s*t2 + d*float64(n)
	return math.Min(t1, t2) + rastrigin
}

// GriewankRosenbrock feeds every Rosenbrock term of consecutive pairs, closed
// cyclically, through Griewank. The optimum is moved to the origin.
func GriewankRosenbrock(z []float64) float64 {
	n := len(z)
	if n == 0 {
		return 0
	}
	f := 0.0
	for i := 0; i < n-1; i++ {
		f += griewankRosenbrockTerm(z[i]+1, z[i+1]+1)
	}
	return f + griewankRosenbrockTerm(z[n-1]+1, z[0]+1)
}

func griewankRosenbrockTerm(a, b float64) float64 {
	t1 := a*a - b
	t2 := a - 1.0
	temp := 100.0*t1*t1 + t2*t2
	return (temp*temp)/4000.0 - math.Cos(temp) + 1.0
}

// ExpandedSchafferF6 sums Schaffer's F6 over consecutive pairs, closed cyclically.
func ExpandedSchafferF6(z []float64) float64 {
	n := len(z)
	if n == 0 {
		return 0
	}
	f := 0.0
	for i := 0; i < n-1; i++ {
		f += schafferF6(z[i], z[i+1])
	}
	return f + schafferF6(z[n-1], z[0])
}

func schafferF6(a, b float64) float64 {
	t1 := math.Sin(math.Sqrt(a*a + b*b))
	t1 = t1 * t1
	t2 := 1.0 + 0.001*(a*a+b*b)
	return 0.5 + (t1-0.5)/(t2*t2)
}

// HappyCat is re-centred so that its native optimum at -1 sits at the origin.
func HappyCat(z []float64) float64 {
	const alpha = 1.0 / 8.0
	n := len(z)
	if n == 0 {
		return 0
	}
	r2, sum := aggregates(z)
	return math.Pow(math.Abs(r2-float64(n)), 2*alpha) + (0.5*r2+sum)/float64(n) + 0.5
}

// HGBat is re-centred so that its native optimum at -1 sits at the origin.
func HGBat(z []float64) float64 {
	const alpha = 1.0 / 4.0
	n := len(z)
	if n == 0 {
		return 0
	}
	r2, sum := aggregates(z)
	return math.Pow(math.Abs(math.Pow(r2, 2.0)-math.Pow(sum, 2.0)), 2*alpha) + (0.5*r2+sum)/float64(n) + 0.5
}

// aggregates returns ||z-1||^2 and Σ(z_i-1).
func aggregates(z []float64) (r2, sum float64) {
	for _, v := range z {
		v -= 1.0
		r2 += v * v
		sum += v
	}
	return r2, sum
}

// exponent returns scale·i/(n-1), or 0 for a single coordinate.
func exponent(scale float64, i, n int) float64 {
	if n < 2 {
		return 0
	}
	return scale * float64(i) / float64(n-1)
}
