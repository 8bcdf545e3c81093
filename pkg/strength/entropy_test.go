package strength_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hatchdotlol/passcheck/pkg/strength"
)

var _ = Describe("EntropyBits", func() {
	It("is zero for an empty password", func() {
		Expect(strength.EntropyBits("")).To(BeZero())
	})

	It("multiplies length by the log of the pool size", func() {
		Expect(strength.EntropyBits("123456")).To(BeNumerically("~", 6*math.Log2(10), 1e-9))
		Expect(strength.EntropyBits("abcdEF")).To(BeNumerically("~", 6*math.Log2(52), 1e-9))
		Expect(strength.EntropyBits("aB3!")).To(BeNumerically("~", 4*math.Log2(95), 1e-9))
	})

	It("grows with length", func() {
		Expect(strength.EntropyBits("Zxcvbn7!k")).To(BeNumerically(">", strength.EntropyBits("Zxcvbn7!")))
	})
})
