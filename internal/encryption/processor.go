package encryption

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/fileutil"
)

// outputPerm is the mode of every file the processor writes.
const outputPerm = 0o600

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Transform

	// cipher is shared by all workers; it is read-only after construction
	cipher *Cipher

	log *logrus.Logger

	// out receives the per-file "Processed" lines
	out io.Writer
}

// NewProcessor resolves the key and IV from cfg and prepares the cipher.
// A nil logger is replaced by logrus.New().
func NewProcessor(cfg *config.Transform, logger *logrus.Logger) (*Processor, error) {
	key, err := cfg.KeyBytes()
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	iv, err := cfg.IVBytes()
	if err != nil {
		return nil, fmt.Errorf("reading IV: %w", err)
	}

	block, err := NewCipher(key, iv)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.New()
	}

	return &Processor{
		cfg:    cfg,
		cipher: block,
		log:    logger,
		out:    os.Stdout,
	}, nil
}

// SetOutput redirects the per-file progress lines.
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// Encrypt packs data into a container and encrypts it.
func (p *Processor) Encrypt(data []byte) ([]byte, error) {
	plain, err := NewContainer(data, p.cfg.EmbedSHA1).MarshalBinary()
	if err != nil {
		return nil, err
	}

	return p.cipher.Encrypt(plain), nil
}

// Decrypt decrypts ciphertext, unpacks the container and compares the
// embedded digests. Outside strict mode a mismatch is only reported in the
// returned Verification and the data is returned regardless.
func (p *Processor) Decrypt(ciphertext []byte) ([]byte, Verification, error) {
	plain, err := p.cipher.Decrypt(ciphertext)
	if err != nil {
		return nil, Verification{}, fmt.Errorf("decrypting: %w", err)
	}

	var container Container
	if err := container.UnmarshalBinary(plain); err != nil {
		return nil, Verification{}, fmt.Errorf("unpacking container: %w", err)
	}

	verification := container.Verify()

	if p.cfg.Strict && !verification.OK() {
		return nil, verification, fmt.Errorf("%w: %s", ErrIntegrityMismatch, describe(verification))
	}

	return container.Data, verification, nil
}

// TransformFile reads src fully, encrypts or decrypts it, and replaces dst
// with the result. It returns the number of bytes written.
// The output keeps the executable bits of src. A dst that resolves to src
// is rejected with ErrSameFile.
func (p *Processor) TransformFile(op Operation, src, dst string) (int64, error) {
	if samePath(src, dst) {
		return 0, fmt.Errorf("%w: %q", ErrSameFile, src)
	}

	input, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return 0, fmt.Errorf("reading %q: %w", src, err)
	}

	perm := os.FileMode(outputPerm)

	isExec, err := fileutil.IsExec(src)
	if err != nil {
		return 0, err
	}

	if isExec {
		perm |= fileutil.ExecutableBits
	}

	log := p.log.WithFields(logrus.Fields{"file": src, "op": op.String()})

	var output []byte

	switch op {
	case Encrypt:
		output, err = p.Encrypt(input)
		if err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	case Decrypt:
		var verification Verification

		output, verification, err = p.Decrypt(input)
		p.report(log, verification, err)

		if err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	default:
		return 0, fmt.Errorf("unknown operation %d", op)
	}

	size, err := fileutil.WriteFile(dst, output, perm)
	if err != nil {
		return 0, fmt.Errorf("writing %q: %w", dst, err)
	}

	log.WithField("bytes", size).Debug("transformed")

	return size, nil
}

func samePath(a, b string) bool {
	absA, err := filepath.Abs(a)
	if err != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	absB, err := filepath.Abs(b)
	if err != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	return absA == absB
}

// report logs the outcome of the digest comparison.
func (p *Processor) report(log *logrus.Entry, v Verification, err error) {
	if err != nil && !errors.Is(err, ErrIntegrityMismatch) {
		return
	}

	log = log.WithFields(logrus.Fields{
		"sha1":   verdict(v.SHA1, v.SHA1Unset),
		"sha256": verdict(v.SHA256, false),
	})

	switch {
	case v.OK():
		log.Debug("digests verified")
	case p.cfg.Strict:
		log.Error("digest mismatch, output not written")
	default:
		log.Warn("digest mismatch, output written anyway")
	}
}

func verdict(ok, unset bool) string {
	switch {
	case unset:
		return "unset"
	case ok:
		return "match"
	default:
		return "mismatch"
	}
}

func describe(v Verification) string {
	return fmt.Sprintf("sha1 %s, sha256 %s", verdict(v.SHA1, v.SHA1Unset), verdict(v.SHA256, false))
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Inputs are removed after a successful transform when Delete is set.
// Returns the number of successfully processed files, the number of errors
// and the total size written.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	op := Encrypt
	if p.cfg.Decrypt {
		op = Decrypt
	}

	results := make(chan Result, len(p.cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				errored++

				p.log.WithField("file", result.Input).WithError(result.Error).Error("processing failed")

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.out, "Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				p.remove(result.Input)
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.OutputPath(file)

			size, err := p.TransformFile(op, file, outPath)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// remove deletes a processed input. Failures are logged and do not count as errors.
func (p *Processor) remove(path string) {
	if err := os.Remove(path); err != nil {
		p.log.WithField("file", path).WithError(err).Error("deleting input failed")

		return
	}

	if !p.cfg.Quiet {
		fmt.Fprintf(p.out, "Deleted %q\n", path)
	}
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) OutputPath(filename string) string {
	if p.cfg.Output != "" {
		return p.cfg.Output
	}

	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
