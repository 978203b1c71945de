package dmcmder_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	dmcmder "github.com/moltbook/moltbook-cli/cmd/moltbook/dm"
)

func newTestCmd() *cobra.Command {
	cmd := dmcmder.NewDMCmd()
	cmd.PersistentFlags().Bool("json", false, "Output as JSON")
	cmd.PersistentFlags().String("config-dir", "", "Override the .moltbook/ config directory")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	return cmd
}

var _ = Describe("DM Command", func() {
	var (
		tmpDir   string
		server   *httptest.Server
		lastReq  *http.Request
		lastBody []byte
		respond  func(w http.ResponseWriter, r *http.Request)
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dm-cmd-test-*")
		Expect(err).NotTo(HaveOccurred())

		lastReq = nil
		lastBody = nil
		respond = func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"success":true}`))
		}

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastReq = r
			lastBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			respond(w, r)
		}))

		os.Setenv("MOLTBOOK_API_KEY", "moltbook_sk_testkey12345")
		os.Setenv("MOLTBOOK_API_BASE", server.URL)
	})

	AfterEach(func() {
		server.Close()
		os.Unsetenv("MOLTBOOK_API_KEY")
		os.Unsetenv("MOLTBOOK_API_BASE")
		os.RemoveAll(tmpDir)
	})

	run := func(args ...string) (string, error) {
		cmd := newTestCmd()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs(append(args, "--config-dir", tmpDir))
		err := cmd.Execute()
		return out.String(), err
	}

	Describe("check", func() {
		It("reports activity", func() {
			respond = func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"success":true,"has_activity":true,"summary":"2 unread messages"}`))
			}

			out, err := run("check")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("2 unread messages"))
			Expect(lastReq.URL.Path).To(Equal("/agents/dm/check"))
		})

		It("reports a quiet inbox", func() {
			respond = func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"success":true,"has_activity":false}`))
			}

			out, err := run("check")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("No new DM activity"))
		})
	})

	Describe("list", func() {
		It("renders conversations", func() {
			respond = func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"success":true,"conversations":{"items":[
					{"conversation_id":"c1","with_agent":{"name":"shelly"},"unread_count":2,"last_message_at":"2026-02-01T10:00:00Z"}
				]}}`))
			}

			out, err := run("list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("shelly"))
			Expect(lastReq.URL.Path).To(Equal("/agents/dm/conversations"))
		})
	})

	Describe("read", func() {
		It("prints message history", func() {
			respond = func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"success":true,"messages":[
					{"from":{"name":"shelly"},"message":"hi there","created_at":"2026-02-01T10:00:00Z"}
				]}`))
			}

			out, err := run("read", "c1")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("shelly"))
			Expect(out).To(ContainSubstring("hi there"))
			Expect(lastReq.URL.Path).To(Equal("/agents/dm/conversations/c1"))
		})
	})

	Describe("send", func() {
		It("posts the message", func() {
			_, err := run("send", "c1", "hello friend")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastReq.Method).To(Equal(http.MethodPost))
			Expect(lastReq.URL.Path).To(Equal("/agents/dm/conversations/c1/send"))

			var body map[string]any
			Expect(json.Unmarshal(lastBody, &body)).To(Succeed())
			Expect(body["message"]).To(Equal("hello friend"))
			Expect(body).NotTo(HaveKey("needs_human_input"))
		})

		It("flags human input with --human", func() {
			_, err := run("send", "c1", "need your operator", "--human")
			Expect(err).NotTo(HaveOccurred())

			var body map[string]any
			Expect(json.Unmarshal(lastBody, &body)).To(Succeed())
			Expect(body["needs_human_input"]).To(Equal(true))
		})
	})

	Describe("request", func() {
		It("targets an agent by name", func() {
			_, err := run("request", "shelly", "let's talk")
			Expect(err).NotTo(HaveOccurred())

			var body map[string]any
			Expect(json.Unmarshal(lastBody, &body)).To(Succeed())
			Expect(body["to"]).To(Equal("shelly"))
			Expect(body).NotTo(HaveKey("to_owner"))
		})

		It("targets an owner handle with --by-owner", func() {
			_, err := run("request", "somehuman", "let's talk", "--by-owner")
			Expect(err).NotTo(HaveOccurred())

			var body map[string]any
			Expect(json.Unmarshal(lastBody, &body)).To(Succeed())
			Expect(body["to_owner"]).To(Equal("somehuman"))
			Expect(body).NotTo(HaveKey("to"))
		})
	})

	Describe("reject", func() {
		It("sends no body without --block", func() {
			_, err := run("reject", "c1")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastReq.URL.Path).To(Equal("/agents/dm/requests/c1/reject"))
			Expect(lastBody).To(BeEmpty())
		})

		It("includes block with --block", func() {
			_, err := run("reject", "c1", "--block")
			Expect(err).NotTo(HaveOccurred())

			var body map[string]any
			Expect(json.Unmarshal(lastBody, &body)).To(Succeed())
			Expect(body["block"]).To(Equal(true))
		})
	})

	Describe("approve", func() {
		It("hits the approve endpoint", func() {
			out, err := run("approve", "c1")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastReq.URL.Path).To(Equal("/agents/dm/requests/c1/approve"))
			Expect(out).To(ContainSubstring("approved"))
		})
	})
})
