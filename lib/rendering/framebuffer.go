package rendering

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Framebuffer is an off-screen render target with a colour texture
// that can be sampled afterwards and a depth/stencil renderbuffer.
type Framebuffer struct {
	ID           uint32
	ColorTexture uint32
	DepthStencil uint32

	Width  int
	Height int
}

func NewFramebuffer(width, height int) (*Framebuffer, error) {
	f := &Framebuffer{}
	gl.GenFramebuffers(1, &f.ID)
	gl.GenTextures(1, &f.ColorTexture)
	gl.GenRenderbuffers(1, &f.DepthStencil)

	err := f.allocate(width, height)
	if err != nil {
		f.Delete()
		return nil, err
	}
	return f, nil
}

func (f *Framebuffer) allocate(width, height int) error {
	f.Width = width
	f.Height = height

	gl.BindFramebuffer(gl.FRAMEBUFFER, f.ID)

	gl.BindTexture(gl.TEXTURE_2D, f.ColorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// kernels sample outside of [0, 1] at the screen edges
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.ColorTexture, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, f.DepthStencil)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, f.DepthStencil)

	err := FramebufferStatusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return err
}

// Resize reallocates the attachments when the window size changed.
func (f *Framebuffer) Resize(width, height int) error {
	if width == f.Width && height == f.Height {
		return nil
	}
	return f.allocate(width, height)
}

func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.ID)
	gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
}

func (f *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (f *Framebuffer) Delete() {
	gl.DeleteFramebuffers(1, &f.ID)
	gl.DeleteTextures(1, &f.ColorTexture)
	gl.DeleteRenderbuffers(1, &f.DepthStencil)
}

func FramebufferStatusError(status uint32) error {
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		return nil
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return fmt.Errorf("framebuffer incomplete: attachment")
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return fmt.Errorf("framebuffer incomplete: missing attachment")
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return fmt.Errorf("framebuffer unsupported")
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return fmt.Errorf("framebuffer incomplete: multisample")
	default:
		return fmt.Errorf("unknown framebuffer issue 0x%x", status)
	}
}
