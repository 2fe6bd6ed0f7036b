package assets

import "embed"

//go:embed vttscribe.example.yaml
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "vttscribe.example.yaml"
