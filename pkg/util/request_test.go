package util_test

import (
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hatchdotlol/passcheck/pkg/util"
)

var _ = Describe("HttpBody", func() {
	It("reads a body within the limit", func() {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"length": 12}`))
		Expect(util.HttpBody(httptest.NewRecorder(), r, 64)).To(Equal([]byte(`{"length": 12}`)))
	})

	It("returns nil for an oversized body", func() {
		r := httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 100)))
		Expect(util.HttpBody(httptest.NewRecorder(), r, 10)).To(BeNil())
	})
})
