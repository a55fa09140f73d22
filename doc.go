// Package wordvec loads pre-trained word-embedding tables from the compact
// binary model format and answers nearest-neighbor and analogy queries
// against them, fully offline.
//
// # Quick Start
//
//	table, err := wordvec.Load("model.bin")
//	if err != nil {
//	    log.Fatal(err) // failed to load: fatal
//	}
//
//	results, ok := table.Similar("cat", 10)
//	if !ok {
//	    // query term unknown: recoverable, report and continue
//	}
//	for _, r := range results {
//	    fmt.Println(r.Word, r.Score)
//	}
//
//	results, ok = table.Analogy("man", "king", "woman", 1)
//
// Model files can also live in object storage:
//
//	store, _ := s3.NewDefaultStore(ctx, "my-bucket", "models/")
//	table, err := wordvec.LoadFromStore(ctx, store, "glove.bin")
//
// # Scores
//
// Ranking scores are raw dot products against the query vector; they read as
// cosine similarity only when the model file contains unit-length vectors.
// Pass WithNormalize to L2-normalize rows at load time for files that are not
// pre-normalized.
//
// # Concurrency
//
// A Table is immutable after load. All query methods are safe for concurrent
// use without locking.
package wordvec
