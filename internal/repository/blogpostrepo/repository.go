package blogpostrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/cache"
	"remoteready/internal/pkg/database"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/metrics"
)

const table = "blog_posts"

// Define a chave de cache para posts.
const postCacheKey = "blogpost:%d"

var columns = []string{"id", "title", "description", "image_url", "tag", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// BlogPostRepository persiste posts no PostgreSQL com cache-aside no Redis para leitura por id.
type BlogPostRepository struct {
	DB        *sqlx.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewBlogPostRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewBlogPostRepository(db *sqlx.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *BlogPostRepository {
	return &BlogPostRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Create insere o post e devolve-o com id e created_at preenchidos.
func (r *BlogPostRepository) Create(ctx context.Context, p domain.BlogPost) (created domain.BlogPost, err error) {
	defer database.Observe("blog_posts.create", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Insert(table).
		Columns("title", "description", "image_url", "tag").
		Values(p.Title, p.Description, p.ImageURL, p.Tag).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.BlogPost{}, apperror.NewDBError("Falha ao montar insert de post", err)
	}

	if err = r.DB.GetContext(ctx, &created, query, args...); err != nil {
		return domain.BlogPost{}, apperror.NewDBError("Falha ao inserir post", err)
	}
	return created, nil
}

// FindByID busca um post pelo ID usando a estratégia Cache-Aside.
// Retorna nil quando o post não existe.
func (r *BlogPostRepository) FindByID(ctx context.Context, id int64) (_ *domain.BlogPost, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(postCacheKey, id)

	// 1. Cache
	if p, ok := r.fromCache(ctx, key); ok {
		return p, nil
	}

	// 2. Banco de dados
	defer database.Observe("blog_posts.find_by_id", time.Now(), &err)

	query, args, err := database.PSQL.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar consulta de post", err)
	}

	p, err := r.one(ctx, "Falha ao buscar post no DB", query, args)
	if err != nil || p == nil {
		return p, err
	}

	// 3. Popula o cache para as próximas leituras.
	r.toCache(ctx, key, p)
	return p, nil
}

func (r *BlogPostRepository) fromCache(ctx context.Context, key string) (*domain.BlogPost, bool) {
	if r.Cache == nil {
		return nil, false
	}
	start := time.Now()
	cached, err := r.Cache.Get(ctx, key)
	if err != nil {
		metrics.ObserveCacheRequest("blog_posts.get", false, time.Since(start))
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("Falha ao ler do cache Redis", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil, false
	}

	var p domain.BlogPost
	if err := json.Unmarshal([]byte(cached), &p); err != nil {
		metrics.ObserveCacheRequest("blog_posts.get", false, time.Since(start))
		r.logger.Warn("Entrada de cache corrompida; ignorando", map[string]interface{}{"key": key})
		return nil, false
	}
	metrics.ObserveCacheRequest("blog_posts.get", true, time.Since(start))
	return &p, true
}

func (r *BlogPostRepository) toCache(ctx context.Context, key string, p *domain.BlogPost) {
	if r.Cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar no cache Redis", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (r *BlogPostRepository) invalidate(ctx context.Context, id int64) {
	if r.Cache == nil {
		return
	}
	key := fmt.Sprintf(postCacheKey, id)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache do post", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// Update sobrescreve os campos mutáveis e invalida o cache. Retorna nil quando o id não existe.
func (r *BlogPostRepository) Update(ctx context.Context, p domain.BlogPost) (_ *domain.BlogPost, err error) {
	defer database.Observe("blog_posts.update", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Update(table).
		SetMap(map[string]interface{}{
			"title":       p.Title,
			"description": p.Description,
			"image_url":   p.ImageURL,
			"tag":         p.Tag,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar update de post", err)
	}

	updated, err := r.one(ctx, "Falha ao atualizar post", query, args)
	if err == nil && updated != nil {
		r.invalidate(ctx, p.ID)
	}
	return updated, err
}

// Delete remove o post (e suas leituras, via cascade) e invalida o cache.
// Retorna nil quando o id não existe.
func (r *BlogPostRepository) Delete(ctx context.Context, id int64) (_ *domain.BlogPost, err error) {
	defer database.Observe("blog_posts.delete", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Delete(table).Where(sq.Eq{"id": id}).Suffix(returning).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar delete de post", err)
	}

	deleted, err := r.one(ctx, "Falha ao excluir post", query, args)
	if err == nil && deleted != nil {
		r.invalidate(ctx, id)
	}
	return deleted, err
}

func (r *BlogPostRepository) one(ctx context.Context, msg, query string, args []interface{}) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.DB.GetContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDBError(msg, err)
	}
	return &p, nil
}

// List pagina os posts do mais recente para o mais antigo. A mesma consulta
// atende "todos", "recentes" e "por tag" (filtro opcional).
func (r *BlogPostRepository) List(ctx context.Context, filter domain.BlogPostFilter, req domain.PageRequest) (_ domain.Page[domain.BlogPost], err error) {
	defer database.Observe("blog_posts.list", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	page, err := database.FetchPage[domain.BlogPost](ctx, r.DB, listQuery(filter), req)
	if err != nil {
		return domain.Page[domain.BlogPost]{}, apperror.NewDBError("Falha ao listar posts", err)
	}
	return page, nil
}

func listQuery(filter domain.BlogPostFilter) database.ListQuery {
	q := database.ListQuery{
		From:    table,
		Columns: columns,
		OrderBy: []string{"created_at DESC", "id DESC"},
	}
	if filter.Tag != "" {
		q.Where = database.ContainsInsensitive("tag", filter.Tag)
	}
	return q
}
