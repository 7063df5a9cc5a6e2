package helper

import (
	"crypto/rsa"
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"github.com/golang-jwt/jwt/v5"
	"github.com/govalues/decimal"
	"github.com/google/uuid"
	"github.com/roysitumorang/storefront/models"
	"github.com/vishal-bihani/go-tsid"
)

func String2ByteSlice(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

func ByteSlice2String(bs []byte) string {
	return *(*string)(unsafe.Pointer(&bs))
}

func GenerateUniqueID() (uniqueID int64, sqID string, uuID string, err error) {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return
	}
	tsid := tsid.Fast()
	return tsid.ToNumber(), tsid.ToLowerCase(), uuidV7.String(), nil
}

// CountPages returns ceil(total / limit); a non-positive limit means a
// single page.
func CountPages(total, limit int64) (int64, error) {
	if limit <= 0 || total == 0 {
		return min(total, 1), nil
	}
	totalDecimal, err := decimal.New(total, 0)
	if err != nil {
		return 0, err
	}
	limitDecimal, err := decimal.New(limit, 0)
	if err != nil {
		return 0, err
	}
	pagesDecimal, err := totalDecimal.Quo(limitDecimal)
	if err != nil {
		return 0, err
	}
	pages, _, ok := pagesDecimal.Ceil(0).Int64(0)
	if !ok {
		return 0, fmt.Errorf("pages: %s overflows int64", pagesDecimal)
	}
	return pages, nil
}

func SetPagination(total, pages, limit, page int64, baseURL string, urlValues url.Values) (*models.Pagination, error) {
	var response models.Pagination
	response.Info.Total = total
	response.Info.Pages = pages
	response.Info.Limit = limit
	response.Links.First = baseURL
	response.Links.Current = baseURL
	var builder strings.Builder
	if len(urlValues) > 0 {
		u := maps.Clone(urlValues)
		u.Del("page")
		queryString, err := url.QueryUnescape(u.Encode())
		if err != nil {
			return nil, err
		}
		_, _ = builder.WriteString(baseURL)
		if queryString != "" {
			_, _ = builder.WriteString("?")
			_, _ = builder.WriteString(queryString)
		}
		response.Links.First = builder.String()
		response.Links.Current = response.Links.First
	}
	if page < pages {
		u := maps.Clone(urlValues)
		if u == nil {
			u = url.Values{}
		}
		u.Set("page", strconv.FormatInt(page+1, 10))
		queryString, err := url.QueryUnescape(u.Encode())
		if err != nil {
			return nil, err
		}
		builder.Reset()
		_, _ = builder.WriteString(baseURL)
		_, _ = builder.WriteString("?")
		_, _ = builder.WriteString(queryString)
		response.Links.Next = builder.String()
	}
	if page > 1 {
		u := maps.Clone(urlValues)
		if u == nil {
			u = url.Values{}
		}
		u.Set("page", strconv.FormatInt(page, 10))
		queryString, err := url.QueryUnescape(u.Encode())
		if err != nil {
			return nil, err
		}
		builder.Reset()
		_, _ = builder.WriteString(baseURL)
		_, _ = builder.WriteString("?")
		_, _ = builder.WriteString(queryString)
		response.Links.Current = builder.String()
		response.Links.Previous = response.Links.First
		if page > 2 {
			u.Set("page", strconv.FormatInt(page-1, 10))
			if queryString, err = url.QueryUnescape(u.Encode()); err != nil {
				return nil, err
			}
			builder.Reset()
			_, _ = builder.WriteString(baseURL)
			_, _ = builder.WriteString("?")
			_, _ = builder.WriteString(queryString)
			response.Links.Previous = builder.String()
		}
	}
	return &response, nil
}

// GenerateAccessToken mints an RS256 token shaped like the identity
// provider's, for local development only.
func GenerateAccessToken(id, subject, issuer, audience string, createdAt, expiredAt time.Time, extra map[string]any, privateKey *rsa.PrivateKey) (string, error) {
	claims := jwt.MapClaims{
		"jti": id,
		"sub": subject,
		"iss": issuer,
		"iat": jwt.NewNumericDate(createdAt),
		"nbf": jwt.NewNumericDate(createdAt),
		"exp": jwt.NewNumericDate(expiredAt),
	}
	if audience != "" {
		claims["aud"] = audience
	}
	for key, value := range extra {
		claims[key] = value
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(privateKey)
}
