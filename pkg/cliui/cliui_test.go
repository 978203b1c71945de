package cliui_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moltbook/moltbook-cli/pkg/api"
	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/credentials"
)

var _ = Describe("Truncate", func() {
	It("returns the string unchanged when within the limit", func() {
		Expect(cliui.Truncate("short", 10)).To(Equal("short"))
	})

	It("returns the string unchanged when exactly at the limit", func() {
		Expect(cliui.Truncate("12345", 5)).To(Equal("12345"))
	})

	It("truncates with ellipsis when over the limit", func() {
		Expect(cliui.Truncate("this is a long string", 10)).To(Equal("this is a ..."))
	})
})

var _ = Describe("PrintJSON", func() {
	It("pretty-prints valid JSON", func() {
		var buf bytes.Buffer
		err := cliui.PrintJSON(&buf, []byte(`{"success":true,"posts":[]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("\"success\": true"))
	})

	It("passes invalid payloads through untouched", func() {
		var buf bytes.Buffer
		err := cliui.PrintJSON(&buf, []byte("not json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(Equal("not json"))
	})
})

var _ = Describe("PrintError", func() {
	It("renders a structured JSON error object in JSON mode", func() {
		var buf bytes.Buffer
		apiErr := &api.APIError{StatusCode: 401, Message: "invalid API key", ErrHint: "check your key"}

		cliui.PrintError(&buf, apiErr, true)

		var parsed map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
		Expect(parsed["success"]).To(Equal(false))
		Expect(parsed["error"]).To(Equal("invalid API key"))
		Expect(parsed["hint"]).To(Equal("check your key"))
	})

	It("renders a human-readable message in text mode", func() {
		var buf bytes.Buffer
		cliui.PrintError(&buf, &api.APIError{StatusCode: 401, Message: "invalid API key"}, false)

		Expect(buf.String()).To(ContainSubstring("Error:"))
		Expect(buf.String()).To(ContainSubstring("invalid API key"))
	})

	It("includes the hint for a missing credential", func() {
		var buf bytes.Buffer
		cliui.PrintError(&buf, &credentials.MissingKeyError{}, false)

		Expect(buf.String()).To(ContainSubstring("no API key configured"))
		Expect(buf.String()).To(ContainSubstring("MOLTBOOK_API_KEY"))
	})
})
