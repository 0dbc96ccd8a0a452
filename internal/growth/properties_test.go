package growth_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/growth"
	"github.com/san-kum/tumorsim/internal/integrators"
	"github.com/san-kum/tumorsim/internal/models"
)

var _ = Describe("Integrate", func() {
	var grid dynamo.TimeGrid

	BeforeEach(func() {
		var err error
		grid, err = dynamo.UniformGrid(0, 100, 0.1)
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns one value per grid point starting at V0", func() {
		tr, err := growth.Integrate(growth.Params{R: 0.2, K: 1000, V0: 10}, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Len()).To(Equal(grid.Len()))
		Expect(tr.At(0)).To(Equal(10.0))
	})

	It("is bit-for-bit deterministic", func() {
		p := growth.Params{R: 0.37, K: 812.5, V0: 3.3}
		a, err := growth.Integrate(p, grid)
		Expect(err).NotTo(HaveOccurred())
		b, err := growth.Integrate(p, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Equal(b)).To(BeTrue())
	})

	DescribeTable("grows monotonically and stays below capacity",
		func(r float64) {
			const k = 1000.0
			tr, err := growth.Integrate(growth.Params{R: r, K: k, V0: 10}, grid)
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < tr.Len(); i++ {
				Expect(tr.At(i)).To(BeNumerically(">=", tr.At(i-1)-1e-9), "step %d", i)
				Expect(tr.At(i)).To(BeNumerically("<=", k+1e-9), "step %d", i)
			}
		},
		Entry("r=0.05", 0.05),
		Entry("r=0.1", 0.1),
		Entry("r=0.2", 0.2),
		Entry("r=0.4", 0.4),
		Entry("r=0.8", 0.8),
	)

	Context("with a very large carrying capacity", func() {
		It("tracks unconstrained exponential growth early on", func() {
			const r, v0 = 0.2, 10.0
			tr, err := growth.Integrate(growth.Params{R: r, K: 1e12, V0: v0}, grid)
			Expect(err).NotTo(HaveOccurred())

			exp := models.NewExponential(r)
			for i := 0; grid.At(i) <= 10; i++ {
				Expect(tr.At(i)).To(BeNumerically("~", exp.Solution(v0, grid.At(i)), 0.03*exp.Solution(v0, grid.At(i))))
			}
		})

		It("matches Euler on the exponential model almost exactly", func() {
			tr, err := growth.Integrate(growth.Params{R: 0.2, K: 1e12, V0: 10}, grid)
			Expect(err).NotTo(HaveOccurred())

			euler := integrators.NewEuler()
			dyn := models.NewExponential(0.2)
			x := dynamo.State{10}
			for i := 1; grid.At(i) <= 20; i++ {
				x = euler.Step(dyn, x, nil, grid.At(i-1), grid.Step(i))
				Expect(math.Abs(tr.At(i)-x[0]) / x[0]).To(BeNumerically("<", 1e-8))
			}
		})
	})
})
