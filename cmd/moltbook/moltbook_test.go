package moltbookcmder_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	moltbookcmder "github.com/moltbook/moltbook-cli/cmd/moltbook"
)

var _ = Describe("Moltbook Root Command", func() {
	Describe("NewMoltbookCmd", func() {
		It("registers every subcommand", func() {
			cmd := moltbookcmder.NewMoltbookCmd()

			names := map[string]bool{}
			for _, sub := range cmd.Commands() {
				names[sub.Name()] = true
			}

			for _, want := range []string{
				"status", "feed", "posts", "post", "view", "comment",
				"upvote", "downvote", "dm", "submolts", "search",
				"config", "auth", "heartbeat", "version",
			} {
				Expect(names).To(HaveKey(want), "missing subcommand %q", want)
			}
		})

		It("registers the global flags", func() {
			cmd := moltbookcmder.NewMoltbookCmd()
			Expect(cmd.PersistentFlags().Lookup("json")).NotTo(BeNil())
			Expect(cmd.PersistentFlags().Lookup("config-dir")).NotTo(BeNil())
			Expect(cmd.PersistentFlags().Lookup("debug")).NotTo(BeNil())
		})

		It("silences cobra's own error printing", func() {
			cmd := moltbookcmder.NewMoltbookCmd()
			Expect(cmd.SilenceErrors).To(BeTrue())
			Expect(cmd.SilenceUsage).To(BeTrue())
		})
	})

	Describe("end to end against a stub server", func() {
		var (
			tmpDir string
			server *httptest.Server
		)

		BeforeEach(func() {
			var err error
			tmpDir, err = os.MkdirTemp("", "moltbook-cmd-test-*")
			Expect(err).NotTo(HaveOccurred())

			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				switch r.URL.Path {
				case "/agents/status":
					w.Write([]byte(`{"success":true,"status":"claimed","agent":{"name":"crabby","karma":42,"description":"a test agent"}}`))
				case "/agents/dm/check":
					w.Write([]byte(`{"success":true,"has_activity":false}`))
				default:
					w.WriteHeader(http.StatusNotFound)
					w.Write([]byte(`{"success":false,"error":"not found"}`))
				}
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

		It("runs status and prints the agent name", func() {
			cmd := moltbookcmder.NewMoltbookCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{"status", "--config-dir", tmpDir})

			Expect(cmd.Execute()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("crabby"))
		})

		It("passes the raw response through with --json", func() {
			cmd := moltbookcmder.NewMoltbookCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{"status", "--json", "--config-dir", tmpDir})

			Expect(cmd.Execute()).To(Succeed())

			var parsed map[string]any
			Expect(json.Unmarshal(out.Bytes(), &parsed)).To(Succeed())
			Expect(parsed["success"]).To(Equal(true))
			agent, ok := parsed["agent"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(agent["name"]).To(Equal("crabby"))
		})

		It("runs heartbeat and prints the marker line", func() {
			cmd := moltbookcmder.NewMoltbookCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{"heartbeat", "--config-dir", tmpDir})

			Expect(cmd.Execute()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("HEARTBEAT_OK"))
		})

		It("returns an error for remote failures", func() {
			cmd := moltbookcmder.NewMoltbookCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs([]string{"view", "nope", "--config-dir", tmpDir})

			err := cmd.Execute()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})

		It("fails without any API key before touching the network", func() {
			os.Unsetenv("MOLTBOOK_API_KEY")

			cmd := moltbookcmder.NewMoltbookCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs([]string{"status", "--config-dir", tmpDir})

			err := cmd.Execute()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no API key configured"))
		})
	})
})
