package generate_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/hatchdotlol/passcheck/pkg/generate"
)

type countingReader struct {
	mu    sync.Mutex
	r     io.Reader
	calls int
	bytes int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	n, err := c.r.Read(p)
	c.bytes += n
	return n, err
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

var _ = Describe("Alphabet", func() {
	It("has 90 distinct characters", func() {
		Expect(generate.Alphabet).To(HaveLen(90))

		seen := map[rune]bool{}
		for _, r := range generate.Alphabet {
			Expect(seen[r]).To(BeFalse(), string(r))
			seen[r] = true
		}
	})
})

var _ = Describe("Generator", func() {
	var gen *generate.Generator

	BeforeEach(func() {
		gen = generate.New()
	})

	DescribeTable("returns exactly the requested number of alphabet characters",
		func(n int) {
			pw, err := gen.Generate(n)
			Expect(err).NotTo(HaveOccurred())
			Expect(pw).To(HaveLen(n))
			for _, r := range pw {
				Expect(strings.ContainsRune(generate.Alphabet, r)).To(BeTrue(), string(r))
			}
		},
		Entry("minimum", 6),
		Entry("typical", 16),
		Entry("long", 200),
		Entry("maximum", generate.DefaultMaxLength),
	)

	It("produces distinct passwords across many calls", func() {
		const trials = 1000
		seen := make(map[string]struct{}, trials)
		for i := 0; i < trials; i++ {
			pw, err := gen.Generate(12)
			Expect(err).NotTo(HaveOccurred())
			seen[pw] = struct{}{}
		}
		Expect(len(seen)).To(BeNumerically(">=", trials-1))
	})

	It("maps each byte modulo the alphabet size in draw order", func() {
		src := bytes.NewReader([]byte{0, 25, 26, 89, 90, 255})
		pw, err := generate.New(generate.WithReader(src)).Generate(6)
		Expect(err).NotTo(HaveOccurred())
		Expect(pw).To(Equal("azA~a" + string(generate.Alphabet[75])))
	})

	DescribeTable("rejects invalid lengths before reading entropy",
		func(n int, reason generate.Reason) {
			src := &countingReader{r: strings.NewReader(strings.Repeat("x", 4096))}
			g := generate.New(generate.WithReader(src), generate.WithMaxLength(64))

			pw, err := g.Generate(n)
			Expect(pw).To(BeEmpty())
			Expect(errors.Is(err, generate.ErrInvalidLength)).To(BeTrue())

			var lerr *generate.InvalidLengthError
			Expect(errors.As(err, &lerr)).To(BeTrue())
			Expect(lerr.Reason).To(Equal(reason))
			Expect(src.calls).To(BeZero())
		},
		Entry("five", 5, generate.ReasonTooShort),
		Entry("zero", 0, generate.ReasonTooShort),
		Entry("negative", -10, generate.ReasonTooShort),
		Entry("above max", 65, generate.ReasonTooLong),
	)

	It("describes invalid lengths with the wire message", func() {
		_, err := gen.Generate(5)
		Expect(err).To(MatchError("Length must be an integer >= 6"))

		_, err = generate.New(generate.WithMaxLength(32)).Generate(33)
		Expect(err).To(MatchError("Length must be <= 32"))
	})

	It("ignores a max length below the minimum", func() {
		Expect(generate.New(generate.WithMaxLength(3)).MaxLength()).To(Equal(generate.DefaultMaxLength))
	})

	It("reads exactly one byte per character", func() {
		src := &countingReader{r: strings.NewReader(strings.Repeat("k", 100))}
		_, err := generate.New(generate.WithReader(src)).Generate(20)
		Expect(err).NotTo(HaveOccurred())
		Expect(src.bytes).To(Equal(20))
	})

	It("wraps entropy source failures without calling them invalid lengths", func() {
		_, err := generate.New(generate.WithReader(failingReader{})).Generate(8)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("entropy pool exhausted"))
		Expect(errors.Is(err, generate.ErrInvalidLength)).To(BeFalse())
	})

	It("fails when the source runs dry", func() {
		_, err := generate.New(generate.WithReader(strings.NewReader("abc"))).Generate(8)
		Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
	})

	It("is safe for concurrent use with a custom reader", func() {
		src := &countingReader{r: strings.NewReader(strings.Repeat("q", 16*50))}
		g := generate.New(generate.WithReader(src))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				pw, err := g.Generate(16)
				Expect(err).NotTo(HaveOccurred())
				Expect(pw).To(HaveLen(16))
			}()
		}
		wg.Wait()
		Expect(src.bytes).To(Equal(16 * 50))
	})

	It("exposes a package-level generator backed by crypto/rand", func() {
		a, err := generate.Generate(24)
		Expect(err).NotTo(HaveOccurred())
		b, err := generate.Generate(24)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).NotTo(Equal(b))
	})
})

var _ = Describe("ParseLength", func() {
	DescribeTable("accepts integers",
		func(v any, want int) {
			n, err := generate.ParseLength(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(want))
		},
		Entry("float64 from JSON", float64(12), 12),
		Entry("int", 8, 8),
		Entry("numeric string", "16", 16),
		Entry("padded string", " 10 ", 10),
		Entry("small number passes through for range check", float64(3), 3),
		Entry("huge number is clamped", float64(1e12), 2147483647),
	)

	DescribeTable("rejects non-integers",
		func(v any) {
			_, err := generate.ParseLength(v)
			Expect(errors.Is(err, generate.ErrInvalidLength)).To(BeTrue())
			Expect(err).To(MatchError("Length must be an integer >= 6"))
		},
		Entry("word", "abc"),
		Entry("fraction", 8.5),
		Entry("fractional string", "8.5"),
		Entry("bool", true),
		Entry("object", map[string]any{}),
	)

	It("rejects a missing value", func() {
		_, err := generate.ParseLength(nil)
		Expect(errors.Is(err, generate.ErrInvalidLength)).To(BeTrue())
	})

	It("reads no entropy when a parsed length is rejected", func() {
		src := &countingReader{r: strings.NewReader(strings.Repeat("x", 64))}
		g := generate.New(generate.WithReader(src))

		n, err := generate.ParseLength("abc")
		Expect(err).To(HaveOccurred())
		Expect(n).To(BeZero())

		_, err = g.Generate(5)
		Expect(err).To(HaveOccurred())
		Expect(src.calls).To(BeZero())
	})
})
