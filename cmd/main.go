package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/cliente"
	"github.com/Arkyehub/Precifix-sub000/internal/custooperacional"
	"github.com/Arkyehub/Precifix-sub000/internal/orcamento"
	"github.com/Arkyehub/Precifix-sub000/internal/pagamento"
	"github.com/Arkyehub/Precifix-sub000/internal/produto"
	"github.com/Arkyehub/Precifix-sub000/internal/servico"
	"github.com/Arkyehub/Precifix-sub000/internal/usuario"
	"github.com/Arkyehub/Precifix-sub000/internal/utils/db"
	"github.com/Arkyehub/Precifix-sub000/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	database, err := db.ConectarBanco()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&cliente.Cliente{},
		&produto.Produto{},
		&servico.Servico{},
		&custooperacional.CustoOperacional{},
		&pagamento.MetodoPagamento{},
		&pagamento.TaxaParcela{},
		&orcamento.Orcamento{},
		&venda.Venda{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Repositories
	usuarioRepo := usuario.NewRepository(database)
	clienteRepo := cliente.NewRepository(database)
	produtoRepo := produto.NewRepository(database)
	servicoRepo := servico.NewRepository(database)
	custoRepo := custooperacional.NewRepository(database)
	pagamentoRepo := pagamento.NewRepository(database)
	orcamentoRepo := orcamento.NewRepository(database)
	vendaRepo := venda.NewRepository(database)

	// Handlers
	usuarioHandler := usuario.NewHandler(usuarioRepo, pagamentoRepo)
	clienteHandler := cliente.NewHandler(clienteRepo)
	produtoHandler := produto.NewHandler(produtoRepo)
	servicoHandler := servico.NewHandler(servicoRepo, produtoRepo)
	custoHandler := custooperacional.NewHandler(custoRepo, servicoRepo)
	pagamentoHandler := pagamento.NewHandler(pagamentoRepo)
	orcamentoHandler := orcamento.NewHandler(orcamentoRepo, clienteRepo, servicoRepo, custoRepo, pagamentoRepo)
	vendaHandler := venda.NewHandler(vendaRepo, orcamentoHandler, pagamentoRepo)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/perfil", usuarioHandler.Perfil).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.AtualizarUsuario).Methods("PUT")

	// Rotas de administração
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Buscar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas de produtos
	api.HandleFunc("/produtos", produtoHandler.Criar).Methods("POST")
	api.HandleFunc("/produtos", produtoHandler.Listar).Methods("GET")
	api.HandleFunc("/produtos/{id}", produtoHandler.Buscar).Methods("GET")
	api.HandleFunc("/produtos/{id}/custo-aplicacao", produtoHandler.CustoAplicacao).Methods("GET")
	api.HandleFunc("/produtos/{id}", produtoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/produtos/{id}", produtoHandler.Deletar).Methods("DELETE")

	// Rotas de serviços
	api.HandleFunc("/servicos", servicoHandler.Criar).Methods("POST")
	api.HandleFunc("/servicos", servicoHandler.Listar).Methods("GET")
	api.HandleFunc("/servicos/{id}", servicoHandler.Buscar).Methods("GET")
	api.HandleFunc("/servicos/{id}", servicoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/servicos/{id}/produtos", servicoHandler.SubstituirProdutos).Methods("PUT")
	api.HandleFunc("/servicos/{id}", servicoHandler.Deletar).Methods("DELETE")

	// Rotas de custos operacionais e modo de custeio
	api.HandleFunc("/custos-operacionais", custoHandler.Criar).Methods("POST")
	api.HandleFunc("/custos-operacionais", custoHandler.Listar).Methods("GET")
	api.HandleFunc("/custos-operacionais/total", custoHandler.Total).Methods("GET")
	api.HandleFunc("/custos-operacionais/modo-custeio", custoHandler.ModoCusteio).Methods("GET")
	api.HandleFunc("/custos-operacionais/modo-custeio", custoHandler.TrocarModoCusteio).Methods("POST")
	api.HandleFunc("/custos-operacionais/{id}", custoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/custos-operacionais/{id}", custoHandler.Deletar).Methods("DELETE")

	// Rotas de métodos de pagamento
	api.HandleFunc("/metodos-pagamento", pagamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/metodos-pagamento", pagamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/metodos-pagamento/{id}", pagamentoHandler.Buscar).Methods("GET")
	api.HandleFunc("/metodos-pagamento/{id}", pagamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/metodos-pagamento/{id}/parcelas", pagamentoHandler.SubstituirParcelas).Methods("PUT")
	api.HandleFunc("/metodos-pagamento/{id}", pagamentoHandler.Deletar).Methods("DELETE")

	// Rotas de orçamentos
	api.HandleFunc("/orcamentos/calcular", orcamentoHandler.Calcular).Methods("POST")
	api.HandleFunc("/orcamentos", orcamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/orcamentos", orcamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.Buscar).Methods("GET")
	api.HandleFunc("/orcamentos/{id}/totais", orcamentoHandler.Totais).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/orcamentos/{id}/status", orcamentoHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/orcamentos/{id}/converter", vendaHandler.ConverterOrcamento).Methods("POST")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.Deletar).Methods("DELETE")

	// Rotas de vendas
	api.HandleFunc("/vendas", vendaHandler.Criar).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.Listar).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.Buscar).Methods("GET")
	api.HandleFunc("/vendas/{id}/lucratividade", vendaHandler.Lucratividade).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/vendas/{id}", vendaHandler.Deletar).Methods("DELETE")

	// CORS para o front
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
