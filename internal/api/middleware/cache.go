package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/pkg/cache"
)

type cachedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CachePage 整页缓存：以完整请求 URI（含 query，分页参数因此各自成键）为键，
// 命中时原样重放。写操作不主动失效，TTL 内读到旧页是约定行为。
func CachePage(store *cache.PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.RequestURI()
		if page, ok := store.Get(c.Request.Context(), key); ok {
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		w := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			store.Set(c.Request.Context(), key, &cache.CachedPage{
				Status:      w.Status(),
				ContentType: w.Header().Get("Content-Type"),
				Body:        w.body.Bytes(),
			})
		}
	}
}
