// Package cleaning implements the sales data cleaning pipeline.
//
// The pipeline is a strict linear chain of four stages over an immutable
// dataset value:
//
//  1. NormalizeHeaders: rewrite column labels into a consistent lexical form
//  2. TrimText: strip surrounding whitespace from product/category columns
//  3. ResolveMissing: coerce price/quantity to numbers and drop rows missing
//     either
//  4. DropInvalid: drop rows with a negative price or quantity
//
// Each stage receives the previous stage's full output and returns a new
// dataset; no stage mutates its input. The first stage error aborts the run,
// so a caller either gets the fully cleaned dataset or no dataset at all.
//
// Typical use:
//
//	p := cleaning.NewPipeline(cleaning.DefaultStages(cleaning.Options{}), logger)
//	cleaned, report, err := p.Run(ctx, raw)
package cleaning
