package lpc

// Calculator is a long-lived analysis workspace, parameterized by an upper
// bound on estimator order and an upper bound on block length. All scratch
// buffers are allocated once at construction and reused by every analysis
// call; a Calculator is not safe for concurrent use, but independent
// Calculators may run on independent goroutines.
//
// This replaces the reference implementation's manual work-buffer pointer
// bumping with a single owning value that lays out its typed sub-buffers in
// its constructor (§9); CalculatorWorkspaceSize remains available for
// callers that want to account for the memory cost ahead of time.
type Calculator struct {
	maxOrder      int
	maxNumSamples int
	a             []float64   // Levinson/Burg coefficient recursion scratch, len maxOrder+2
	autoCorr      []float64   // len maxOrder+1
	lpcCoef       []float64   // len maxOrder+1, lpcCoef[0] == 1
	parcorCoef    []float64   // len maxOrder+1, parcorCoef[0] == 0
	rMatData      []float64   // flat (maxOrder+1)^2 backing store, shared by Burg's covariance matrix and the aux-function normal equations
	rMat          [][]float64
	windowBuf     []float64   // len maxNumSamples
	auxCoef       []float64   // len maxOrder, aux-function working coefficients
	auxRHS        []float64   // len maxOrder
	auxDiagInv    []float64   // len maxOrder, Cholesky reciprocal-sqrt cache
	auxWeight     []float64   // len maxNumSamples, per-sample L1 reweighting
	auxMat        [][]float64 // len maxOrder, row views into rMatData
}

// NewCalculator allocates a Calculator whose estimators never operate on an
// order greater than maxOrder or a block longer than maxNumSamples.
func NewCalculator(maxOrder, maxNumSamples int) (*Calculator, error) {
	if maxOrder <= 0 || maxNumSamples <= 0 {
		return nil, ErrInvalidArgument
	}

	dim := maxOrder + 1
	c := &Calculator{
		maxOrder:      maxOrder,
		maxNumSamples: maxNumSamples,
		a:             make([]float64, maxOrder+2),
		autoCorr:      make([]float64, dim),
		lpcCoef:       make([]float64, dim),
		parcorCoef:    make([]float64, dim),
		rMatData:      make([]float64, dim*dim),
		rMat:          make([][]float64, dim),
		windowBuf:     make([]float64, maxNumSamples),
		auxCoef:       make([]float64, maxOrder),
		auxRHS:        make([]float64, maxOrder),
		auxDiagInv:    make([]float64, maxOrder),
		auxWeight:     make([]float64, maxNumSamples),
	}
	for i := range c.rMat {
		c.rMat[i] = c.rMatData[i*dim : (i+1)*dim]
	}
	c.auxMat = make([][]float64, maxOrder)
	for i := range c.auxMat {
		c.auxMat[i] = c.rMat[i][:maxOrder]
	}
	return c, nil
}

// CalculatorWorkspaceSize returns the number of float64 scratch slots a Calculator
// built with these bounds would allocate, for callers that want to account
// for memory cost ahead of construction. Multiply by 8 (or the platform
// float64 size) for a byte estimate; a real allocation is additionally
// rounded up to the platform's scalar alignment by the Go runtime.
func CalculatorWorkspaceSize(maxOrder, maxNumSamples int) (int, error) {
	if maxOrder <= 0 || maxNumSamples <= 0 {
		return 0, ErrInvalidArgument
	}
	dim := maxOrder + 1
	slots := (maxOrder + 2) /*a*/ + dim /*autoCorr*/ + 2*dim /*lpc+parcor*/ + dim*dim /*rMat, shared by Burg and the aux-function*/ + maxNumSamples /*window*/
	slots += 3 * maxOrder  // aux-function coef/rhs/diagInv
	slots += maxNumSamples // aux-function per-sample weights
	return slots, nil
}

func (c *Calculator) validate(numSamples, order int) error {
	if order <= 0 {
		return ErrInvalidArgument
	}
	if numSamples <= 0 {
		return ErrInvalidArgument
	}
	if order > c.maxOrder {
		return ErrExceedMaxOrder
	}
	if numSamples > c.maxNumSamples {
		return ErrExceedMaxNumSamples
	}
	return nil
}

// prepare windows data into c.windowBuf and fills c.autoCorr[0:order+1]
// with its biased autocorrelation. Caller must have already validated
// numSamples and order against the Calculator's bounds.
func (c *Calculator) prepare(data []float64, numSamples, order int, window WindowType) error {
	if err := applyWindow(window, data[:numSamples], c.windowBuf[:numSamples]); err != nil {
		return err
	}
	autocorrelate(c.windowBuf, numSamples, order+1, c.autoCorr)
	return nil
}

// computeLevinson runs windowing, autocorrelation, and the Levinson-Durbin
// recursion, leaving results in c.lpcCoef[0:order+1] and
// c.parcorCoef[0:order+1]. A block shorter than order degrades gracefully
// to all-zero coefficients, matching the reference implementation's "too
// few samples to trust the estimate" fallback.
func (c *Calculator) computeLevinson(data []float64, numSamples, order int, window WindowType) error {
	if err := c.prepare(data, numSamples, order, window); err != nil {
		return err
	}
	if numSamples < order {
		for i := 0; i <= order; i++ {
			c.lpcCoef[i] = 0
			c.parcorCoef[i] = 0
		}
		c.lpcCoef[0] = 1
		return nil
	}
	return levinsonDurbin(c.autoCorr[:order+1], order, c.a, c.lpcCoef, c.parcorCoef)
}

// AnalyzeLevinsonDurbin estimates order LPC coefficients for data from its
// windowed sample autocorrelation, writing lpcCoef[1:order+1] into
// coefOut[0:order] and, if parcorOut is non-nil, the corresponding PARCOR
// coefficients into parcorOut[0:order].
func (c *Calculator) AnalyzeLevinsonDurbin(data []float64, order int, window WindowType, coefOut, parcorOut []float64) error {
	if data == nil || coefOut == nil {
		return ErrInvalidArgument
	}
	if len(coefOut) < order {
		return ErrInvalidArgument
	}
	if err := c.validate(len(data), order); err != nil {
		return err
	}
	if err := c.computeLevinson(data, len(data), order, window); err != nil {
		return err
	}
	copy(coefOut[:order], c.lpcCoef[1:order+1])
	if parcorOut != nil {
		if len(parcorOut) < order {
			return ErrInvalidArgument
		}
		copy(parcorOut[:order], c.parcorCoef[1:order+1])
	}
	return nil
}

// AnalyzeBurg estimates order LPC coefficients for data using Burg's
// forward/backward error minimization instead of the sample
// autocorrelation, writing results the same way as AnalyzeLevinsonDurbin.
func (c *Calculator) AnalyzeBurg(data []float64, order int, window WindowType, coefOut, parcorOut []float64) error {
	if data == nil || coefOut == nil {
		return ErrInvalidArgument
	}
	if len(coefOut) < order {
		return ErrInvalidArgument
	}
	if err := c.validate(len(data), order); err != nil {
		return err
	}
	if err := c.computeBurg(data, len(data), order, window); err != nil {
		return err
	}
	copy(coefOut[:order], c.lpcCoef[1:order+1])
	if parcorOut != nil {
		if len(parcorOut) < order {
			return ErrInvalidArgument
		}
		copy(parcorOut[:order], c.parcorCoef[1:order+1])
	}
	return nil
}

// AnalyzeAuxFunctionL1 estimates order LPC coefficients for data by
// iteratively reweighted least squares targeting an L1 residual fit,
// running maxIter reweighting rounds. It does not produce PARCOR
// coefficients — parcorOut, if non-nil, is left zeroed — since the method
// does not proceed order-by-order through a lattice recursion the way
// Levinson-Durbin and Burg do.
func (c *Calculator) AnalyzeAuxFunctionL1(data []float64, order, maxIter int, window WindowType, coefOut, parcorOut []float64) error {
	if data == nil || coefOut == nil {
		return ErrInvalidArgument
	}
	if len(coefOut) < order || maxIter <= 0 {
		return ErrInvalidArgument
	}
	if err := c.validate(len(data), order); err != nil {
		return err
	}
	if err := c.computeAuxFunctionL1(data, len(data), order, maxIter, window); err != nil {
		return err
	}
	copy(coefOut[:order], c.lpcCoef[1:order+1])
	if parcorOut != nil {
		if len(parcorOut) < order {
			return ErrInvalidArgument
		}
		copy(parcorOut[:order], c.parcorCoef[1:order+1])
	}
	return nil
}
