package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The only implementation is the CPU backend in internal/backend/cpu;
// the forward pass is pure in-memory arithmetic and needs nothing else.
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Matrix operations
	// For 2D tensors: (M, K) @ (K, N) -> (M, N)
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor // exponential
	Log(x *RawTensor) *RawTensor // natural logarithm

	// Activation functions
	ReLU(x *RawTensor) *RawTensor             // max(0, x)
	Sigmoid(x *RawTensor) *RawTensor          // 1 / (1 + exp(-x)), overflow-safe
	Tanh(x *RawTensor) *RawTensor             // hyperbolic tangent
	Softmax(x *RawTensor, dim int) *RawTensor // softmax along dimension

	// Reduction operations
	Sum(x *RawTensor) *RawTensor                           // total sum (scalar result)
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // sum along dimension
	Argmax(x *RawTensor, dim int) *RawTensor               // index of maximum value along dimension

	// Metadata
	Name() string
}
