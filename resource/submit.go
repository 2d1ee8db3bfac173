package resource

import (
	"context"

	"github.com/pkg/errors"

	"github.com/krisalay/folio-data/gateway"
)

// TestimonialInput is a visitor-submitted testimonial. Image is optional.
type TestimonialInput struct {
	Name    string
	Role    string
	Company string
	Message string
	Image   *gateway.Attachment
}

/*
CreateTestimonial uploads a testimonial as multipart form data so an image
can ride along. The cached testimonial list is dropped on success.
*/
func (c *Client) CreateTestimonial(ctx context.Context, in TestimonialInput) (*Testimonial, error) {
	fields := map[string]string{
		"name":    in.Name,
		"role":    in.Role,
		"company": in.Company,
		"message": in.Message,
	}
	var files []gateway.Attachment
	if in.Image != nil {
		img := *in.Image
		if img.Field == "" {
			img.Field = "image"
		}
		files = append(files, img)
	}

	ep := endpoint(PathTestimonials)
	p, err := c.gw.PostMultipart(ctx, ep, fields, files...)
	if err != nil {
		return nil, errors.Wrap(err, "create testimonial")
	}
	c.gw.Invalidate(ep)
	t, err := One[Testimonial](p)
	return t, errors.Wrap(err, "create testimonial")
}

// ContactForm is what the contact section collects.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

/*
SubmitContact sends the form. The backend has no subject field, so a
subject is folded into the message as "subject\n\nmessage".
*/
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (*ContactMessage, error) {
	msg := form.Message
	if form.Subject != "" {
		msg = form.Subject + "\n\n" + form.Message
	}
	p, err := c.gw.Post(ctx, endpoint(PathContact), contactPayload{
		Name:    form.Name,
		Email:   form.Email,
		Message: msg,
	})
	if err != nil {
		return nil, errors.Wrap(err, "submit contact form")
	}
	m, err := One[ContactMessage](p)
	return m, errors.Wrap(err, "submit contact form")
}
