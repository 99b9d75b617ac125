package templates

// SwiftFileTemplate renders a Swift enumeration of LocalizedStringResource
// members. Control actions trim the newline before them so that every
// content line carries its own leading newline.
const SwiftFileTemplate = `// swiftlint:disable all
// Generated from {{ .Source }}
// Do not edit manually

import Foundation

public enum {{ .Enum }}: Equatable, Hashable {
{{- range $i, $c := .Categories }}
{{- if $i }}
{{- "\n" }}
{{- end }}
  // MARK: - {{ $c.Name }}
  public enum {{ $c.Name }} {
{{- range $j, $m := $c.Members }}
{{- if $j }}
{{- "\n" }}
{{- end }}
{{- if $m.Unused }}
    #warning("{{ $.Enum }}.{{ $m.UsageID }} is unused")
{{- end }}
{{- if $m.Comment }}
    /// {{ $m.Comment }}
{{- end }}
{{- if $m.Params }}
    public static func {{ $m.Name }}({{ params ", " ": " $m.Params }}) -> LocalizedStringResource {
      LocalizedStringResource(
        {{ $m.KeyLiteral }},
        defaultValue: {{ $m.Value }}
      )
    }
{{- else }}
    public static let {{ $m.Name }} = LocalizedStringResource(
      {{ $m.KeyLiteral }},
      defaultValue: {{ $m.Value }}
    )
{{- end }}
{{- end }}
  }
{{- end }}
}
`
