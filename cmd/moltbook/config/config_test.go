package configcmder_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	configcmder "github.com/moltbook/moltbook-cli/cmd/moltbook/config"
)

// newTestCmd builds the config command with the persistent flags the root
// command normally provides.
func newTestCmd() *cobra.Command {
	cmd := configcmder.NewConfigCmd()
	cmd.PersistentFlags().Bool("json", false, "Output as JSON")
	cmd.PersistentFlags().String("config-dir", "", "Override the .moltbook/ config directory")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	return cmd
}

func runCmd(args ...string) (string, error) {
	cmd := newTestCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("Config Command", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-cmd-test-*")
		Expect(err).NotTo(HaveOccurred())

		os.Unsetenv("MOLTBOOK_API_KEY")
		os.Unsetenv("MOLTBOOK_API_BASE")
		os.Unsetenv("MOLTBOOK_FORMAT")
		os.Unsetenv("MOLTBOOK_TIMEOUT_SECONDS")
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("set", func() {
		It("persists a value and reads it back with get", func() {
			_, err := runCmd("set", "api_base", "https://example.com/api/v1", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())

			out, err := runCmd("get", "api_base", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("https://example.com/api/v1"))
			Expect(out).To(ContainSubstring("file"))
		})

		It("writes the config file into the chosen directory", func() {
			_, err := runCmd("set", "format", "json", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = os.Stat(filepath.Join(tmpDir, "config.toml"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects empty values", func() {
			_, err := runCmd("set", "api_key", "   ", "--config-dir", tmpDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("cannot be empty"))

			_, statErr := os.Stat(filepath.Join(tmpDir, "config.toml"))
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("rejects unknown keys", func() {
			_, err := runCmd("set", "nope", "value", "--config-dir", tmpDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown config key"))
		})

		It("masks the api_key in its confirmation output", func() {
			out, err := runCmd("set", "api_key", "moltbook_sk_1234567890abcdef", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).NotTo(ContainSubstring("moltbook_sk_1234567890abcdef"))
			Expect(out).To(ContainSubstring("moltbook_s...cdef"))
		})
	})

	Describe("get", func() {
		It("reports defaults with their source", func() {
			out, err := runCmd("get", "format", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("text"))
			Expect(out).To(ContainSubstring("default"))
		})

		It("reports an unset api_key as not set", func() {
			out, err := runCmd("get", "api_key", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("not set"))
		})

		It("prefers the environment over the file", func() {
			_, err := runCmd("set", "api_base", "https://file.example.com", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())

			os.Setenv("MOLTBOOK_API_BASE", "https://env.example.com")
			defer os.Unsetenv("MOLTBOOK_API_BASE")

			out, err := runCmd("get", "api_base", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("https://env.example.com"))
			Expect(out).To(ContainSubstring("env"))
		})

		It("emits a JSON object with --json", func() {
			out, err := runCmd("get", "format", "--json", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())

			var parsed map[string]any
			Expect(json.Unmarshal([]byte(out), &parsed)).To(Succeed())
			Expect(parsed["key"]).To(Equal("format"))
			Expect(parsed["value"]).To(Equal("text"))
			Expect(parsed["source"]).To(Equal("default"))
			Expect(parsed["set"]).To(Equal(true))
		})
	})

	Describe("show", func() {
		It("never prints the full api_key", func() {
			_, err := runCmd("set", "api_key", "moltbook_sk_supersecret99", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())

			out, err := runCmd("show", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).NotTo(ContainSubstring("moltbook_sk_supersecret99"))
			Expect(out).To(ContainSubstring("moltbook_s...et99"))
		})

		It("masks an environment-provided api_key too", func() {
			os.Setenv("MOLTBOOK_API_KEY", "moltbook_sk_fromenv12345")
			defer os.Unsetenv("MOLTBOOK_API_KEY")

			out, err := runCmd("show", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).NotTo(ContainSubstring("moltbook_sk_fromenv12345"))
			Expect(out).To(ContainSubstring("env"))
		})

		It("includes the config file path", func() {
			out, err := runCmd("show", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(filepath.Join(tmpDir, "config.toml")))
		})

		It("keeps the api_key masked in JSON output", func() {
			_, err := runCmd("set", "api_key", "moltbook_sk_supersecret99", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())

			out, err := runCmd("show", "--json", "--config-dir", tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).NotTo(ContainSubstring("moltbook_sk_supersecret99"))

			var parsed map[string]any
			Expect(json.Unmarshal([]byte(out), &parsed)).To(Succeed())
			entry, ok := parsed["api_key"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(entry["value"]).To(Equal("moltbook_s...et99"))
			Expect(entry["source"]).To(Equal("file"))
		})
	})
})
