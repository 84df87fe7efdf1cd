package llm

import "golang.org/x/sync/semaphore"

// TextSem limita as requisições simultâneas ao serviço de geração
var TextSem = semaphore.NewWeighted(4)
