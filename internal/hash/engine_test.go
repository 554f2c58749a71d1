package hash

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownVectors = []struct {
	name  string
	input string
	want  string
}{
	{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"hello world", "hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	{"hello world newline", "hello world\n", "a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447"},
	{"56 bytes", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{"112 bytes", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1"},
	{"one million a", strings.Repeat("a", 1000000), "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
}

func randomBytes(t testing.TB, seed uint64, n int) []byte {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.IntN(256))
	}
	return b
}

func TestKnownVectors(t *testing.T) {
	for _, tc := range knownVectors {
		t.Run(tc.name, func(t *testing.T) {
			e := New()
			require.NoError(t, e.UpdateString(tc.input))
			assert.Equal(t, tc.want, ToString(e.Digest()))
			assert.Equal(t, tc.want, Sum256([]byte(tc.input)).String())
		})
	}
}

func TestMatchesStandardLibraryAcrossPaddingBoundaries(t *testing.T) {
	msg := randomBytes(t, 1, 300)
	for n := 0; n <= len(msg); n++ {
		want := stdsha256.Sum256(msg[:n])
		got := Sum256(msg[:n])
		require.Equal(t, want[:], got[:], "length %d", n)
	}
}

func TestExactBlockMultiples(t *testing.T) {
	for _, blocks := range []int{1, 2, 3, 16, 1024} {
		msg := randomBytes(t, uint64(blocks), blocks*BlockSize)
		want := stdsha256.Sum256(msg)

		e := New()
		require.NoError(t, e.Update(msg))
		got := e.Digest()
		assert.Equal(t, want[:], got[:], "%d blocks", blocks)
	}
}

func TestStreamingEqualsSingleWrite(t *testing.T) {
	msg := randomBytes(t, 2, 200)
	want := Sum256(msg)

	for split := 0; split <= len(msg); split++ {
		e := New()
		require.NoError(t, e.Update(msg[:split]))
		require.NoError(t, e.Update(msg[split:]))
		require.Equal(t, want, e.Digest(), "split at %d", split)
	}

	r := rand.New(rand.NewPCG(3, 4))
	for round := 0; round < 50; round++ {
		e := New()
		rest := msg
		for len(rest) > 0 {
			n := r.IntN(len(rest) + 1)
			require.NoError(t, e.Update(rest[:n]))
			rest = rest[n:]
		}
		require.Equal(t, want, e.Digest(), "round %d", round)
	}
}

func TestFreshInstancesAreDeterministic(t *testing.T) {
	a, b := New(), New()
	require.NoError(t, a.UpdateString("determinism"))
	require.NoError(t, b.UpdateString("determinism"))
	assert.Equal(t, a.Digest(), b.Digest())
}

func TestDigestIsRepeatableAndResumable(t *testing.T) {
	e := New()
	require.NoError(t, e.UpdateString("hello "))
	first := e.Digest()
	assert.Equal(t, first, e.Digest(), "second Digest call changed the result")
	assert.Equal(t, Sum256([]byte("hello ")), first)
	assert.Equal(t, uint64(6), e.Len())

	require.NoError(t, e.UpdateString("world"))
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", e.Digest().String())
}

func TestZeroLengthUpdateIsNoop(t *testing.T) {
	e := New()
	require.NoError(t, e.UpdateString("abc"))
	before := *e
	require.NoError(t, e.Update(nil))
	require.NoError(t, e.Update([]byte{}))
	assert.Equal(t, before, *e)
}

func TestWriteRejectsMessagesPastTheCounterLimit(t *testing.T) {
	e := New()
	e.len = MaxMessageBytes - 2
	e.nx = int(e.len % BlockSize)
	before := *e

	n, err := e.Write([]byte("abc"))
	require.ErrorIs(t, err, ErrMessageTooLong)
	assert.Zero(t, n)
	assert.Equal(t, before, *e, "rejected write must not change the engine")

	n, err = e.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(MaxMessageBytes), e.Len())
	assert.ErrorIs(t, e.UpdateString("x"), ErrMessageTooLong)
}

func TestResetRestoresInitialState(t *testing.T) {
	e := New()
	require.NoError(t, e.UpdateString(strings.Repeat("x", 130)))
	e.Reset()
	assert.Equal(t, *New(), *e)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", e.Digest().String())
}

func TestSumAppendsDigest(t *testing.T) {
	e := New()
	require.NoError(t, e.UpdateString("abc"))
	prefix := []byte("prefix")
	out := e.Sum(prefix)
	require.Len(t, out, len(prefix)+Size)
	assert.True(t, bytes.HasPrefix(out, prefix))
	d := e.Digest()
	assert.Equal(t, d[:], out[len(prefix):])
	assert.Equal(t, Size, e.Size())
	assert.Equal(t, BlockSize, e.BlockSize())
}

func FuzzMatchesStandardLibrary(f *testing.F) {
	f.Add([]byte(""), 0)
	f.Add([]byte("abc"), 1)
	f.Add(bytes.Repeat([]byte{0xff}, 119), 56)
	f.Fuzz(func(t *testing.T, msg []byte, split int) {
		if split < 0 {
			split = -split
		}
		split %= len(msg) + 1
		e := New()
		if err := e.Update(msg[:split]); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if err := e.Update(msg[split:]); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		want := stdsha256.Sum256(msg)
		got := e.Digest()
		if !bytes.Equal(want[:], got[:]) {
			t.Fatalf("digest mismatch got %x want %x", got, want)
		}
	})
}

func BenchmarkUpdate(b *testing.B) {
	msg := randomBytes(b, 5, 8192)
	e := New()
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Reset()
		_ = e.Update(msg)
	}
}

func BenchmarkDigest(b *testing.B) {
	e := New()
	_ = e.UpdateString("abc")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Digest()
	}
}
