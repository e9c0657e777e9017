// Package docs registra a especificação Swagger da API servida em /swagger.
// Mantida à mão no formato do swag; regenerável com "swag init -g cmd/main.go".
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/usuario/autenticar": {
            "post": {
                "description": "Realiza a autenticação do usuário e retorna um token JWT.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuario"],
                "summary": "Autentica um usuário",
                "parameters": [
                    {"description": "Email e senha", "name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Autenticação realizada com sucesso", "schema": {"$ref": "#/definitions/domain.LoginResult"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/usuario": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuario"],
                "summary": "Lista usuários",
                "parameters": [
                    {"type": "integer", "description": "Página (padrão 1)", "name": "PaginaAtual", "in": "query"},
                    {"type": "integer", "description": "Itens por página (padrão 10)", "name": "LimitePagina", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "204": {"description": "Não há usuários cadastrados"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuario"],
                "summary": "Cadastra um novo usuário",
                "parameters": [
                    {"description": "Dados do usuário", "name": "usuario", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Payload inválido ou e-mail já cadastrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/usuario/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["usuario"],
                "summary": "Obtém usuário por ID",
                "parameters": [{"type": "integer", "description": "ID do usuário", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Usuário não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["usuario"],
                "summary": "Atualiza um usuário",
                "parameters": [
                    {"type": "integer", "description": "ID do usuário", "name": "id", "in": "path", "required": true},
                    {"description": "Dados do usuário", "name": "usuario", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UserRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "403": {"description": "Apenas ADMIN"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["usuario"],
                "summary": "Remove um usuário",
                "parameters": [{"type": "integer", "description": "ID do usuário", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "403": {"description": "Apenas ADMIN"}}
            }
        },
        "/empresa": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["empresa"], "summary": "Lista empresas", "responses": {"200": {"description": "OK"}, "204": {"description": "Não há empresas cadastradas"}}},
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["empresa"],
                "summary": "Cadastra uma empresa",
                "parameters": [{"description": "Dados da empresa", "name": "empresa", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CompanyRequest"}}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Apenas ADMIN"}}
            }
        },
        "/empresa/contratando": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["empresa"], "summary": "Lista empresas contratando agora", "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}}}
        },
        "/empresa/area/{area}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["empresa"],
                "summary": "Lista empresas por área",
                "parameters": [{"type": "string", "description": "Área de atuação", "name": "area", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}}
            }
        },
        "/empresa/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["empresa"], "summary": "Obtém empresa por ID", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Empresa não encontrada"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["empresa"], "summary": "Atualiza uma empresa", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "empresa", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CompanyRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Company"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["empresa"], "summary": "Remove uma empresa", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Company"}}}}
        },
        "/blogpost": {
            "get": {"tags": ["blogpost"], "summary": "Lista posts do blog", "responses": {"200": {"description": "OK"}, "204": {"description": "Não há posts cadastrados"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["blogpost"], "summary": "Cria um post", "parameters": [{"name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.BlogPostRequest"}}], "responses": {"201": {"description": "Created"}, "403": {"description": "Apenas ADMIN"}}}
        },
        "/blogpost/recentes": {
            "get": {"tags": ["blogpost"], "summary": "Lista posts recentes", "responses": {"200": {"description": "OK"}, "204": {"description": "Não há posts recentes"}}}
        },
        "/blogpost/tag/{tag}": {
            "get": {"tags": ["blogpost"], "summary": "Lista posts por tag", "parameters": [{"type": "string", "name": "tag", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}}}
        },
        "/blogpost/{id}": {
            "get": {"tags": ["blogpost"], "summary": "Obtém post por ID", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Post não encontrado"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["blogpost"], "summary": "Atualiza um post", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.BlogPostRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BlogPost"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["blogpost"], "summary": "Remove um post", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BlogPost"}}}}
        },
        "/userpost": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Lista todas as leituras", "responses": {"200": {"description": "OK"}, "204": {"description": "Não há registros cadastrados"}, "403": {"description": "Apenas ADMIN"}}}
        },
        "/userpost/marcar-lido": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["userpost"],
                "summary": "Marca um post como lido",
                "parameters": [
                    {"type": "integer", "name": "idUsuario", "in": "query", "required": true},
                    {"type": "integer", "name": "idPost", "in": "query", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Este post já foi marcado como lido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}
            }
        },
        "/userpost/usuario/{idUsuario}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Lista posts lidos pelo usuário", "parameters": [{"type": "integer", "name": "idUsuario", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "204": {"description": "Este usuário ainda não leu nenhum post"}}}
        },
        "/userpost/progresso/{idUsuario}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Progresso de leitura do usuário", "parameters": [{"type": "integer", "name": "idUsuario", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ProgressReport"}}}}
        },
        "/userpost/certificado/{idUsuario}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Elegibilidade ao certificado", "parameters": [{"type": "integer", "name": "idUsuario", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CertificateStatus"}}}}
        },
        "/userpost/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Obtém leitura por ID", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Atualiza o status da leitura", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UserPostStatusRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserPost"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["userpost"], "summary": "Remove uma leitura", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserPost"}}}}
        }
    },
    "definitions": {
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "NOT_FOUND"},
                "code": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "Empresa não encontrada"}
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {
                "email": {"type": "string", "example": "maria@remoteready.com"},
                "senha": {"type": "string", "example": "s3nh@Forte"}
            }
        },
        "domain.LoginResult": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "tipoUsuario": {"type": "string", "example": "USER"},
                "token": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "dataCriacao": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "domain.UserRequest": {
            "type": "object",
            "required": ["email", "nome", "senha"],
            "properties": {
                "email": {"type": "string"},
                "nome": {"type": "string", "maxLength": 100},
                "role": {"type": "string"},
                "senha": {"type": "string", "maxLength": 72}
            }
        },
        "domain.Company": {"type": "object"},
        "domain.CompanyRequest": {"type": "object"},
        "domain.BlogPost": {"type": "object"},
        "domain.BlogPostRequest": {"type": "object"},
        "domain.UserPost": {"type": "object"},
        "domain.UserPostStatusRequest": {"type": "object"},
        "domain.ProgressReport": {"type": "object"},
        "domain.CertificateStatus": {"type": "object"}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Informe \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "RemoteReady API",
	Description:      "API de empresas remotas, blog e trilha de leitura com certificado.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
