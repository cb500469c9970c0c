// Package viz draws the three census-income charts: the capital-gain and
// capital-loss distributions, the learner comparison grid and the top five
// feature importances.
//
// The package-level functions Distribution, Evaluate and FeaturePlot only
// build a *Figure. A Renderer created with Init also shows each figure on a
// Surface, inline on a writer or as a file:
//
//	r, err := viz.Init(viz.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	if _, err := r.Distribution(ctx, data, false); err != nil {
//		return err
//	}
package viz
