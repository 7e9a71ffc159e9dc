package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// UploadInput — параметры загрузки видео.
//
// Size нужен только для прогресса; при нуле OnProgress не вызывается.
// OnProgress получает процент 0..100 и вызывается из горутины записи
// тела запроса.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
	Title       string
	Description string
	OnProgress  func(percent int)
}

// progressReader считает прочитанные байты и репортит процент.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	fn    func(percent int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)

	if p.fn != nil && p.total > 0 {
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		// Репортим только изменения, чтобы не дёргать колбэк на каждый чанк.
		if pct != p.last {
			p.last = pct
			p.fn(pct)
		}
	}

	return n, err
}

// UploadVideo загружает файл multipart-запросом (поля file, title,
// description) и возвращает созданную запись. Тело стримится через
// io.Pipe: файл не буферизуется в памяти целиком.
func (c *Client) UploadVideo(ctx context.Context, in UploadInput) (*models.VideoEntry, error) {
	const op = "api/upload/UploadVideo"

	if in.Content == nil {
		return nil, fmt.Errorf("%s: %w: empty content", op, ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%s: %w: empty title", op, ErrInvalidArgument)
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeUploadBody(mw, in, contentType)
		mw.Close()
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/videos/upload", nil), pr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.uploadc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w", op, statusError(resp))
	}

	var created models.VideoEntry
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return &created, nil
}

// writeUploadBody пишет части multipart-тела в порядке file, title, description.
func writeUploadBody(mw *multipart.Writer, in UploadInput, contentType string) error {
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, in.FileName))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return err
	}

	src := io.Reader(in.Content)
	if in.OnProgress != nil && in.Size > 0 {
		src = &progressReader{r: in.Content, total: in.Size, last: -1, fn: in.OnProgress}
	}

	if _, err := io.Copy(part, src); err != nil {
		return err
	}

	if err := mw.WriteField("title", in.Title); err != nil {
		return err
	}

	return mw.WriteField("description", in.Description)
}
