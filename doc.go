// Package appmeta extracts build metadata and icons from mobile
// application packages.
//
// Two formats are supported: IPA (iOS application archives) and APK
// (Android packages). A single call drives the whole pipeline:
//
//	md, err := appmeta.Parse(appmeta.Request{
//		Path:     "App.ipa",
//		IconPath: "icon.png",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(md.Name, md.Version)
//
// IPA files are staged into a scratch workspace and unpacked before the
// bundle's property list is decoded; the workspace is removed before
// Parse returns, on success and failure alike. APK files are decoded in
// place from the binary manifest and resource table. Icons are written
// as standard PNG, including Apple's proprietary CgBI variant, which is
// normalized on the way out.
//
// Precondition violations are reported as *ArgumentError, extraction
// failures as *ParseError.
package appmeta
