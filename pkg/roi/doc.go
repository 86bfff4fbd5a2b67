// Package roi is the financial calculation engine behind college program
// analysis. It turns tuition, living costs, aid, salary estimates and rates
// into cost, debt, earnings, ROI, payback, debt-to-income and comfort metrics.
//
// Every function is pure and safe for concurrent use. Degenerate inputs
// (zero cost, zero income, zero rate) degrade to 0, or to +Inf for a payback
// period that can never complete, instead of returning errors. Inputs are
// not validated: out-of-range values flow through the formulas and the caps
// bound the results.
//
// Callers sequence the functions along the data dependencies:
// cost, debt, earnings, loan payment and monthly income, DTI, payback and
// finally the comfort index.
package roi
