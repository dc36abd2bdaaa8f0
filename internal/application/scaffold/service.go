package scaffold

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/pkg/filesystem"
	"github.com/doeshing/n8n-ready/internal/ports"
)

var (
	// ErrInvalidProfile is returned for anything other than local or prod.
	ErrInvalidProfile = errors.New(`profile must be either "local" or "prod"`)
	// ErrProjectExists is returned when the target directory is already present.
	ErrProjectExists = errors.New("directory already exists")
	// ErrTemplateMissing is returned when no template ships for the profile.
	ErrTemplateMissing = errors.New("template not found")
	// ErrInvalidDomain is returned for a --domain value that is not a bare host.
	ErrInvalidDomain = errors.New("invalid domain")
)

var hostLine = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(domain.EnvKeyHost) + `=.*$`)

// Request describes a project to scaffold.
type Request struct {
	Name    string
	Profile string
	// Domain, when set, produces a ready .env with N8N_HOST filled in.
	Domain string
	// BaseDir defaults to the working directory.
	BaseDir string
}

// Result reports what was created.
type Result struct {
	Name       string
	Dir        string
	Profile    domain.Profile
	Files      []string
	EnvWritten bool
}

// Service creates project directories from embedded templates.
type Service struct {
	Templates fs.FS
	Logger    ports.Logger
}

// Init validates the request, copies the profile template and writes README.md.
func (s *Service) Init(ctx context.Context, req Request) (Result, error) {
	profile, ok := domain.ParseProfile(req.Profile)
	if !ok {
		return Result{}, errors.WithHint(
			errors.Wrapf(ErrInvalidProfile, "profile %q", req.Profile),
			"Use --profile local or --profile prod")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Result{}, errors.New("project name is required")
	}
	host := strings.TrimSpace(req.Domain)
	if host != "" {
		if err := validateHost(host); err != nil {
			return Result{}, err
		}
	}

	dir, err := filepath.Abs(filepath.Join(req.BaseDir, name))
	if err != nil {
		return Result{}, errors.Wrapf(err, "resolve %s", name)
	}
	if filesystem.Exists(dir) {
		return Result{}, errors.WithHint(
			errors.Wrapf(ErrProjectExists, "directory %q", name),
			"Choose another project name or remove the existing directory")
	}

	if info, err := fs.Stat(s.Templates, string(profile)); err != nil || !info.IsDir() {
		return Result{}, errors.Wrapf(ErrTemplateMissing, "profile %q", profile)
	}
	tmpl, err := fs.Sub(s.Templates, string(profile))
	if err != nil {
		return Result{}, errors.Wrapf(err, "open template %q", profile)
	}

	res := Result{Name: name, Dir: dir, Profile: profile}
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return Result{}, errors.Wrapf(err, "create %s", dir)
	}

	files, err := copyTree(ctx, tmpl, dir)
	if err != nil {
		return res, err
	}
	res.Files = files

	readme, err := RenderReadme(name, profile)
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(dir, domain.ReadmeFileName), []byte(readme), domain.FilePermissions); err != nil {
		return res, errors.Wrap(err, "write README.md")
	}
	res.Files = append(res.Files, domain.ReadmeFileName)

	if host != "" {
		if err := writeEnv(dir, host); err != nil {
			return res, err
		}
		res.EnvWritten = true
		res.Files = append(res.Files, domain.EnvFileName)
	}

	if s.Logger != nil {
		s.Logger.Info("project scaffolded", map[string]interface{}{
			"dir":     dir,
			"profile": string(profile),
			"files":   len(res.Files),
		})
	}
	return res, nil
}

func copyTree(ctx context.Context, src fs.FS, dst string) ([]string, error) {
	var files []string
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, domain.DirectoryPermissions)
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, domain.FilePermissions); err != nil {
			return err
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return files, errors.Wrap(err, "copy template")
	}
	return files, nil
}

// writeEnv derives .env from .env.example with N8N_HOST replaced, keeping
// the example's comments and ordering.
func writeEnv(dir, host string) error {
	examplePath := filepath.Join(dir, domain.EnvExampleName)
	data, err := os.ReadFile(examplePath)
	if err != nil {
		return errors.Wrapf(err, "read %s", domain.EnvExampleName)
	}
	if _, err := godotenv.Unmarshal(string(data)); err != nil {
		return errors.Wrapf(err, "parse %s", domain.EnvExampleName)
	}

	line := domain.EnvKeyHost + "=" + host
	content := string(data)
	if hostLine.MatchString(content) {
		replaced := false
		content = hostLine.ReplaceAllStringFunc(content, func(m string) string {
			if replaced {
				return m
			}
			replaced = true
			return line
		})
	} else {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += line + "\n"
	}

	envPath := filepath.Join(dir, domain.EnvFileName)
	if err := os.WriteFile(envPath, []byte(content), domain.SecureFilePermissions); err != nil {
		return errors.Wrapf(err, "write %s", domain.EnvFileName)
	}

	written, err := godotenv.Read(envPath)
	if err != nil {
		return errors.Wrapf(err, "verify %s", domain.EnvFileName)
	}
	if written[domain.EnvKeyHost] != host {
		return errors.Newf("%s: %s was not written", domain.EnvFileName, domain.EnvKeyHost)
	}
	return nil
}

func validateHost(host string) error {
	if strings.ContainsAny(host, " \t/:") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidDomain, "%q", host),
			"Pass a bare host name such as n8n.example.com")
	}
	return nil
}
