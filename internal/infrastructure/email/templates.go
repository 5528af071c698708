package email

// Templates HTML das mensagens transacionais.
// Chaves esperadas em Data: Name, Link (verification/password_reset).
const templateSource = `
{{define "verification"}}
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Olá, {{.Name}}!</h2>
    <p>Confirme seu email para ativar sua conta na Eventra.</p>
    <p>O link expira em 5 minutos.</p>
    <p><a href="{{.Link}}">Verificar email</a></p>
    <p>Se você não criou esta conta, ignore esta mensagem.</p>
  </body>
</html>
{{end}}

{{define "password_reset"}}
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Olá, {{.Name}}!</h2>
    <p>Recebemos um pedido para redefinir sua senha.</p>
    <p>O link expira em 15 minutos e só pode ser usado uma vez.</p>
    <p><a href="{{.Link}}">Redefinir senha</a></p>
    <p>Se você não pediu a redefinição, ignore esta mensagem.</p>
  </body>
</html>
{{end}}

{{define "query_ack"}}
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Olá, {{.Name}}!</h2>
    <p>Recebemos sua mensagem e responderemos em breve.</p>
    <p>Equipe Eventra</p>
  </body>
</html>
{{end}}
`
