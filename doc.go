// Package matpow raises square matrices to non-negative integer powers over
// Z/mZ, or over unbounded 64-bit integers with overflow detection, by binary
// exponentiation.
//
// What is inside?
//
//	• Exact 64-bit modular arithmetic that never overflows, for any m ≥ 1
//	• A dense row-major matrix store with explicit, idempotent release
//	• Sum, subtract, scale, transpose, submatrix and multiply
//	• Power in O(n³·log e) with an observable step hook
//	• A textual codec: "(1,2;3,4)"
//	• A CLI with known-data checks, random benchmarks and timing charts
//
// Under the hood, everything is organized under these packages:
//
//	numeric/             checked and modular uint64 arithmetic, the Modulus type
//	matrix/              Dense store, algebra, Power
//	codec/               Parse / Format of the "(a,b;c,d)" grammar
//	internal/harness/    timed execution, known scenarios, report generator
//	internal/config/     YAML configuration
//	internal/logging/    zap loggers
//	internal/messages/   localized error texts (en, ru)
//	internal/report/     go-echarts timing charts
//	internal/cli/        cobra commands
//	cmd/matpow/          the binary
//
// Quick example:
//
//	mod := numeric.MustModular(100)
//	fib, _ := codec.Parse("(1,1;1,0)", mod)
//	p, _ := matrix.Power(fib, 10)
//	fmt.Println(codec.MustFormat(p)) // (89,55;55,34)
//
//	go install github.com/katalvlaran/matpow/cmd/matpow@latest
package matpow
