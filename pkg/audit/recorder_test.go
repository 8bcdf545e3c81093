package audit_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hatchdotlol/passcheck/pkg/audit"
	"github.com/hatchdotlol/passcheck/pkg/audit/auditfakes"
	"github.com/hatchdotlol/passcheck/pkg/metrics"
	"github.com/hatchdotlol/passcheck/pkg/strength"
)

var _ = Describe("Recorder", func() {
	var (
		store    *auditfakes.FakeStore
		recorder *audit.Recorder
		now      time.Time
	)

	BeforeEach(func() {
		store = &auditfakes.FakeStore{}
		now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	})

	JustBeforeEach(func() {
		var err error
		recorder, err = audit.NewRecorder(store,
			audit.WithMetrics(metrics.New()),
			audit.WithClock(func() time.Time { return now }),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(recorder.Close(context.Background())).To(Succeed())
	})

	It("writes masked records in the background", func() {
		res := strength.Evaluate("Tr0ub4dor&3XZ")
		Expect(recorder.Record("Tr0ub4dor&3XZ", res)).To(BeTrue())

		Eventually(store.Records).Should(HaveLen(1))
		rec := store.Records()[0]
		Expect(rec.Masked).To(Equal("T***********Z"))
		Expect(rec.Score).To(Equal(100))
		Expect(rec.Label).To(Equal("Very Strong"))
		Expect(rec.Ts).To(Equal(now))
		Expect(rec.ID).To(HaveLen(26))
	})

	It("never stores the raw password", func() {
		recorder.Record("hunter2hunter2", strength.Evaluate("hunter2hunter2"))
		Eventually(store.Records).Should(HaveLen(1))
		Expect(store.Records()[0].Masked).NotTo(ContainSubstring("hunter2"))
	})

	Context("when the store fails", func() {
		BeforeEach(func() {
			store.InsertStub = func(context.Context, audit.Record) error {
				return errors.New("disk full")
			}
		})

		It("keeps accepting records", func() {
			Expect(recorder.Record("abcdef1!", strength.Evaluate("abcdef1!"))).To(BeTrue())
			Expect(recorder.Record("abcdef2!", strength.Evaluate("abcdef2!"))).To(BeTrue())
			Eventually(store.InsertCallCount).Should(Equal(2))
			Expect(store.Records()).To(BeEmpty())
		})
	})

	Context("when the store panics", func() {
		BeforeEach(func() {
			store.InsertStub = func(context.Context, audit.Record) error {
				panic("boom")
			}
		})

		It("survives and continues draining", func() {
			recorder.Record("abcdef1!", strength.Evaluate("abcdef1!"))
			recorder.Record("abcdef2!", strength.Evaluate("abcdef2!"))
			Eventually(store.InsertCallCount).Should(Equal(2))
		})
	})

	Context("when the queue is full", func() {
		var release chan struct{}

		BeforeEach(func() {
			release = make(chan struct{})
			store.InsertStub = func(context.Context, audit.Record) error {
				<-release
				return nil
			}
		})

		JustBeforeEach(func() {
			Expect(recorder.Close(context.Background())).To(Succeed())

			var err error
			recorder, err = audit.NewRecorder(store, audit.WithQueueSize(1))
			Expect(err).NotTo(HaveOccurred())
		})

		It("drops records without blocking", func() {
			res := strength.Evaluate("Zxcvbn7!")
			accepted := 0
			for i := 0; i < 10; i++ {
				if recorder.Record("Zxcvbn7!", res) {
					accepted++
				}
			}
			Expect(accepted).To(BeNumerically("<", 10))
			Expect(accepted).To(BeNumerically(">=", 1))
			close(release)
		})
	})

	Context("when the store is slow", func() {
		var deadlines chan error

		BeforeEach(func() {
			deadlines = make(chan error, 1)
			store.InsertStub = func(ctx context.Context, _ audit.Record) error {
				<-ctx.Done()
				deadlines <- ctx.Err()
				return ctx.Err()
			}
		})

		JustBeforeEach(func() {
			Expect(recorder.Close(context.Background())).To(Succeed())

			var err error
			recorder, err = audit.NewRecorder(store, audit.WithWriteTimeout(20*time.Millisecond))
			Expect(err).NotTo(HaveOccurred())
		})

		It("gives up on the write after the timeout", func() {
			Expect(recorder.Record("Zxcvbn7!", strength.Evaluate("Zxcvbn7!"))).To(BeTrue())
			Eventually(deadlines).Should(Receive(MatchError(context.DeadlineExceeded)))
			Expect(store.Records()).To(BeEmpty())
		})
	})

		It("drains queued records on Close", func() {
		for i := 0; i < 20; i++ {
			pw := "Zxcvbn7!" + strings.Repeat("k", i)
			Expect(recorder.Record(pw, strength.Evaluate(pw))).To(BeTrue())
		}
		Expect(recorder.Close(context.Background())).To(Succeed())
		Expect(store.Records()).To(HaveLen(20))
	})

	It("rejects records after Close", func() {
		Expect(recorder.Close(context.Background())).To(Succeed())
		Expect(recorder.Record("Zxcvbn7!", strength.Evaluate("Zxcvbn7!"))).To(BeFalse())
	})

	It("clamps the limit passed to the store", func() {
		var got []int
		store.RecentStub = func(_ context.Context, limit int) ([]audit.Record, error) {
			got = append(got, limit)
			return nil, nil
		}

		_, err := recorder.Recent(context.Background(), 0)
		Expect(err).NotTo(HaveOccurred())
		_, err = recorder.Recent(context.Background(), 10000)
		Expect(err).NotTo(HaveOccurred())
		_, err = recorder.Recent(context.Background(), 7)
		Expect(err).NotTo(HaveOccurred())

		Expect(got).To(Equal([]int{audit.DefaultRecentLimit, audit.MaxRecentLimit, 7}))
	})

	It("requires a store", func() {
		_, err := audit.NewRecorder(nil)
		Expect(err).To(MatchError(audit.ErrInvalidInput))
	})
})

var _ = Describe("a nil Recorder", func() {
	It("is a no-op", func() {
		var r *audit.Recorder
		Expect(r.Record("Zxcvbn7!", strength.Evaluate("Zxcvbn7!"))).To(BeFalse())
		Expect(r.Close(context.Background())).To(Succeed())
		_, err := r.Recent(context.Background(), 5)
		Expect(err).To(MatchError(audit.ErrInvalidInput))
	})
})
