package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/justyntemme/vst3param/pkg/framework/debug"
	"github.com/justyntemme/vst3param/pkg/framework/param"
)

type noteState struct {
	text string
	err  error
}

func (n *noteState) SaveState(w io.Writer) error {
	if n.err != nil {
		return n.err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(n.text))); err != nil {
		return err
	}
	_, err := io.WriteString(w, n.text)
	return err
}

func (n *noteState) LoadState(r io.Reader) error {
	var size uint16
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	n.text = string(buf)
	return nil
}

var _ = Describe("Manager", func() {
	var (
		reg     *param.Registry
		gain    *param.Parameter
		mode    *param.Parameter
		manager *Manager
	)

	BeforeEach(func() {
		quiet := debug.New(GinkgoWriter, "state", debug.DefaultFlags)
		reg = param.NewRegistry()
		reg.SetLogger(quiet)

		params, err := reg.Add(
			param.GainInfo(1, "Gain").Build(),
			param.ChoiceInfo(2, "Mode", param.FilterTypes).Build(),
		)
		Expect(err).NotTo(HaveOccurred())
		gain, mode = params[0], params[1]

		manager = NewManager(reg)
		manager.SetLogger(quiet)
	})

	It("should round trip raw values", func() {
		gain.SetValue(-12.5)
		mode.SetValue(param.FilterTypeNotch)

		var buf bytes.Buffer
		Expect(manager.Save(&buf)).To(Succeed())

		gain.SetValue(0)
		mode.SetValue(0)

		Expect(manager.Load(&buf)).To(Succeed())
		Expect(gain.Value()).To(Equal(-12.5))
		Expect(mode.DisplayValue()).To(Equal("Notch"))
	})

	It("should notify only parameters whose value changed", func() {
		gain.SetValue(-6)
		var buf bytes.Buffer
		Expect(manager.Save(&buf)).To(Succeed())

		var changed []string
		record := func(p *param.Parameter) { changed = append(changed, p.Info().Name) }
		gain.SetValueChangedHandler(record)
		mode.SetValueChangedHandler(record)

		gain.SetValue(3)
		changed = nil

		Expect(manager.Load(&buf)).To(Succeed())
		Expect(changed).To(Equal([]string{"Gain"}))
	})

	It("should skip parameters that are no longer registered", func() {
		var buf bytes.Buffer
		Expect(manager.Save(&buf)).To(Succeed())

		other := param.NewRegistry()
		other.SetLogger(debug.New(GinkgoWriter, "", 0))
		params, err := other.Add(param.MixInfo(3, "Mix").Build())
		Expect(err).NotTo(HaveOccurred())

		loader := NewManager(other)
		loader.SetLogger(debug.New(GinkgoWriter, "", 0))
		Expect(loader.Load(&buf)).To(Succeed())
		Expect(params[0].Value()).To(Equal(100.0))
	})

	It("should restore into the parameter that owns a repeated id", func() {
		dup := param.NewRegistry()
		dup.SetLogger(debug.New(GinkgoWriter, "", 0))
		params, err := dup.Add(param.MixInfo(5, "A").Build(), param.MixInfo(5, "B").Build())
		Expect(err).NotTo(HaveOccurred())
		a, b := params[0], params[1]
		a.SetValue(10)
		b.SetValue(90)

		m := NewManager(dup)
		m.SetLogger(debug.New(GinkgoWriter, "", 0))
		var buf bytes.Buffer
		Expect(m.Save(&buf)).To(Succeed())

		a.SetValue(50)
		Expect(m.Load(&buf)).To(Succeed())
		Expect(a.Value()).To(Equal(10.0))
		Expect(b.Value()).To(Equal(90.0))
	})

	It("should reject foreign data", func() {
		err := manager.Load(bytes.NewBufferString("NOTOURSxxxxxxxx"))
		Expect(errors.Is(err, ErrBadHeader)).To(BeTrue())
	})

	It("should reject newer versions", func() {
		var buf bytes.Buffer
		buf.WriteString(magic)
		Expect(binary.Write(&buf, binary.LittleEndian, currentVersion+1)).To(Succeed())

		err := manager.Load(&buf)
		Expect(errors.Is(err, ErrNewerVersion)).To(BeTrue())
	})

	It("should fail on truncated data", func() {
		var buf bytes.Buffer
		Expect(manager.Save(&buf)).To(Succeed())

		truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-5])
		Expect(manager.Load(truncated)).NotTo(Succeed())
	})

	Context("with custom state", func() {
		It("should save and restore it after the parameters", func() {
			manager.SetCustomState(&noteState{text: "warm preset"})
			var buf bytes.Buffer
			Expect(manager.Save(&buf)).To(Succeed())

			restored := &noteState{}
			manager.SetCustomState(restored)
			Expect(manager.Load(&buf)).To(Succeed())
			Expect(restored.text).To(Equal("warm preset"))
		})

		It("should report save errors", func() {
			manager.SetCustomState(&noteState{err: errors.New("disk full")})
			Expect(manager.Save(io.Discard)).To(MatchError(ContainSubstring("disk full")))
		})

		It("should ignore custom data without a handler", func() {
			manager.SetCustomState(&noteState{text: "x"})
			var buf bytes.Buffer
			Expect(manager.Save(&buf)).To(Succeed())

			manager.SetCustomState(nil)
			Expect(manager.Load(&buf)).To(Succeed())
		})
	})
})
