package wc_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"gitlab.com/yarbelk/slimwc/lib/wc"
)

var _ = Describe("ResultsSet", func() {
	var (
		results      []wc.Result
		outputStream *bytes.Buffer
	)

	BeforeEach(func() {
		outputStream = new(bytes.Buffer)
	})

	Context("with a single file", func() {
		BeforeEach(func() {
			results = []wc.Result{
				{Counts: wc.CountBytes([]byte("a b\nc\n"), wc.DefaultMetrics), Filename: "file.txt"},
			}
		})

		It("prints one row without a total", func() {
			Expect(wc.NewResultsSet(results).Fprint(outputStream, wc.DefaultMetrics)).To(Succeed())
			Expect(outputStream.String()).To(Equal("2 3 6 file.txt\n"))
		})

		It("totals the single file", func() {
			Expect(wc.NewResultsSet(results).Total).To(Equal(wc.Counts{Lines: 2, Words: 3, Bytes: 6}))
		})
	})

	Context("with several files", func() {
		BeforeEach(func() {
			results = []wc.Result{
				{Counts: wc.Counts{Lines: 1, Words: 1, Bytes: 4}, Filename: "a"},
				{Filename: "b", Err: errors.New("wc: b: No such file or directory")},
				{Counts: wc.Counts{Lines: 100, Words: 7, Bytes: 3}, Filename: "c"},
			}
		})

		It("sums only the successful rows", func() {
			Expect(wc.NewResultsSet(results).Total).To(Equal(wc.Counts{Lines: 101, Words: 8, Bytes: 7}))
		})

		It("appends a total row", func() {
			rs := wc.NewResultsSet(results)
			Expect(rs.Results).To(HaveLen(4))
			Expect(rs.Results[3].Filename).To(Equal("total"))
		})

		It("does not write the total into the caller's spare capacity", func() {
			backing := make([]wc.Result, len(results), len(results)+1)
			copy(backing, results)
			wc.NewResultsSet(backing)
			Expect(backing[:len(results)+1][len(results)]).To(Equal(wc.Result{}))
		})

		It("pads every column to the widest total", func() {
			Expect(wc.NewResultsSet(results).Fprint(outputStream, wc.DefaultMetrics)).To(Succeed())
			Expect(outputStream.String()).To(Equal(
				"  1   1   4 a\n" +
					"wc: b: No such file or directory\n" +
					"100   7   3 c\n" +
					"101   8   7 total\n"))
		})
	})

	Context("when every file failed", func() {
		BeforeEach(func() {
			results = []wc.Result{
				{Filename: "x", Err: errors.New("wc: x: No such file or directory")},
				{Filename: "y", Err: errors.New("wc: y: No such file or directory")},
			}
		})

		It("still prints a zero total", func() {
			Expect(wc.NewResultsSet(results).Fprint(outputStream, wc.DefaultMetrics)).To(Succeed())
			Expect(outputStream.String()).To(Equal(
				"wc: x: No such file or directory\n" +
					"wc: y: No such file or directory\n" +
					"0 0 0 total\n"))
		})
	})
})
