package common

import (
	"math"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order.
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// MulVec4 multiplies a 4x4 column-major matrix by a 4D column vector.
//
// Parameters:
//   - m: the matrix (16 elements, column-major)
//   - x, y, z, w: the vector components
//
// Returns:
//   - ox, oy, oz, ow: the transformed vector components
func MulVec4(m []float32, x, y, z, w float32) (ox, oy, oz, ow float32) {
	ox = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	oy = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	oz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	ow = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return
}

// Perspective creates a perspective projection matrix.
// Clip-space z lands in [0, 1]: a point on the near plane projects to depth 0
// and a point on the far plane to depth 1. This is the depth convention the
// framebuffer's depth test relies on (nearer = smaller).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// Viewport creates the matrix that maps normalized device coordinates to
// screen space: x from [-1, 1] to [0, width], y from [-1, 1] to [height, 0]
// (flipped so increasing y goes down the screen), z passed through unchanged
// as the normalized depth.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
func Viewport(out []float32, width, height float32) {
	Identity(out)
	out[0] = width / 2
	out[5] = -height / 2
	out[12] = width / 2
	out[13] = height / 2
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler
// rotation, and a uniform scale. Rotation order is Z * Y * X applied before
// the scale and translation, so the full composition is T * S * Rz * Ry * Rx.
// The result is column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//   - scale: uniform scale factor
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scale float32) {
	cx := float32(math.Cos(float64(rotX)))
	sx := float32(math.Sin(float64(rotX)))
	cy := float32(math.Cos(float64(rotY)))
	sy := float32(math.Sin(float64(rotY)))
	cz := float32(math.Cos(float64(rotZ)))
	sz := float32(math.Sin(float64(rotZ)))

	// R = Rz * Ry * Rx, written out row by row.
	r00 := cz * cy
	r01 := cz*sy*sx - sz*cx
	r02 := cz*sy*cx + sz*sx
	r10 := sz * cy
	r11 := sz*sy*sx + cz*cx
	r12 := sz*sy*cx - cz*sx
	r20 := -sy
	r21 := cy * sx
	r22 := cy * cx

	out[0] = r00 * scale
	out[1] = r10 * scale
	out[2] = r20 * scale
	out[3] = 0

	out[4] = r01 * scale
	out[5] = r11 * scale
	out[6] = r21 * scale
	out[7] = 0

	out[8] = r02 * scale
	out[9] = r12 * scale
	out[10] = r22 * scale
	out[11] = 0

	out[12] = posX
	out[13] = posY
	out[14] = posZ
	out[15] = 1
}

// NormalMatrix computes the 3x3 matrix that correctly transforms normals
// under the given model matrix: the inverse-transpose of the model matrix's
// upper-left 3x3 block. If that block is singular (zero determinant) the
// output falls back to the identity instead of failing, so degenerate scales
// degrade to untransformed normals rather than NaNs.
//
// The result is column-major: element (row, col) is at index col*3+row.
//
// Parameters:
//   - out: destination slice (must be at least 9 elements)
//   - model: the 4x4 model matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was invertible, false if the identity fallback was used
func NormalMatrix(out, model []float32) bool {
	// Upper-left 3x3 of the column-major model matrix.
	a00, a01, a02 := model[0], model[4], model[8]
	a10, a11, a12 := model[1], model[5], model[9]
	a20, a21, a22 := model[2], model[6], model[10]

	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		for i := range 9 {
			out[i] = 0
		}
		out[0], out[4], out[8] = 1, 1, 1
		return false
	}

	invDet := 1.0 / det

	// inverse(M)^T = adjugate(M)^T / det = cofactor(M) / det.
	out[0] = c00 * invDet
	out[1] = c01 * invDet
	out[2] = c02 * invDet
	out[3] = (a02*a21 - a01*a22) * invDet
	out[4] = (a00*a22 - a02*a20) * invDet
	out[5] = (a01*a20 - a00*a21) * invDet
	out[6] = (a01*a12 - a02*a11) * invDet
	out[7] = (a02*a10 - a00*a12) * invDet
	out[8] = (a00*a11 - a01*a10) * invDet
	return true
}

// MulVec3Mat3 multiplies a 3x3 column-major matrix by a 3D vector.
//
// Parameters:
//   - m: the matrix (9 elements, column-major)
//   - x, y, z: the vector components
//
// Returns:
//   - ox, oy, oz: the transformed vector components
func MulVec3Mat3(m []float32, x, y, z float32) (ox, oy, oz float32) {
	ox = m[0]*x + m[3]*y + m[6]*z
	oy = m[1]*x + m[4]*y + m[7]*z
	oz = m[2]*x + m[5]*y + m[8]*z
	return
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0 := eyeX - centerX
	z1 := eyeY - centerY
	z2 := eyeZ - centerZ
	val := float64(z0*z0 + z1*z1 + z2*z2)
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / float32(math.Sqrt(val))
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	val = float64(x0*x0 + x1*x1 + x2*x2)
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / float32(math.Sqrt(val))
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// Dot3 returns the dot product of two 3D vectors.
//
// Parameters:
//   - a, b: the vectors
//
// Returns:
//   - float32: a · b
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Normalize3 returns the unit-length copy of a 3D vector. The zero vector is
// returned unchanged.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - [3]float32: the normalized vector
func Normalize3(v [3]float32) [3]float32 {
	lenSq := float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if lenSq == 0 {
		return v
	}
	inv := float32(1.0 / math.Sqrt(lenSq))
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}
